package controllers

import (
	"errors"
	"net/http"

	"github.com/Tshegofatso85/Footprint-Logger/services"
	"github.com/Tshegofatso85/Footprint-Logger/utils"

	"github.com/gin-gonic/gin"
)

// respondErr maps service errors onto HTTP statuses: caller mistakes are 400,
// missing resources 404, everything else a generic 500.
func respondErr(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err), errors.Is(err, utils.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
