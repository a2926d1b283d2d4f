package controllers

import (
	"net/http"
	"strconv"

	"github.com/Tshegofatso85/Footprint-Logger/services"
	"github.com/Tshegofatso85/Footprint-Logger/utils"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Svc *services.ActivityService
}

func NewActivityController(svc *services.ActivityService) *ActivityController {
	return &ActivityController{Svc: svc}
}

type logActivityRequest struct {
	Date     string                 `json:"date" binding:"required"`
	Activity services.ActivityInput `json:"activity" binding:"required"`
}

// Log appends one activity to the caller's day log, creating the log on the
// day's first entry.
func (ac *ActivityController) Log(c *gin.Context) {
	uid := c.GetUint("userID")

	var req logActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := utils.ParseDay(req.Date)
	if err != nil {
		respondErr(c, err)
		return
	}

	log, err := ac.Svc.LogActivity(c.Request.Context(), uid, day, req.Activity)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

// MyLogs lists the caller's day logs, optionally bounded by ?from and ?to.
func (ac *ActivityController) MyLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	r, err := rangeFromQuery(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	logs, err := ac.Svc.ListLogs(c.Request.Context(), uid, r)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// All flattens every entry the caller logged, with an optional ?category filter.
func (ac *ActivityController) All(c *gin.Context) {
	uid := c.GetUint("userID")

	feed, err := ac.Svc.AllActivities(c.Request.Context(), uid, c.Query("category"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// Delete removes one entry; the day log itself goes when its last entry does.
func (ac *ActivityController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	logID, err1 := strconv.ParseUint(c.Param("logId"), 10, 32)
	entryID, err2 := strconv.ParseUint(c.Param("activityId"), 10, 32)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid logId or activityId"})
		return
	}

	logRemoved, err := ac.Svc.DeleteActivity(c.Request.Context(), uid, uint(logID), uint(entryID))
	if err != nil {
		respondErr(c, err)
		return
	}

	if logRemoved {
		c.JSON(http.StatusOK, gin.H{"message": "Activity deleted; log removed", "logId": logID})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

func rangeFromQuery(c *gin.Context) (services.DateRange, error) {
	var r services.DateRange
	if v := c.Query("from"); v != "" {
		d, err := utils.ParseDay(v)
		if err != nil {
			return r, err
		}
		r.From = &d
	}
	if v := c.Query("to"); v != "" {
		d, err := utils.ParseDay(v)
		if err != nil {
			return r, err
		}
		r.To = &d
	}
	return r, nil
}
