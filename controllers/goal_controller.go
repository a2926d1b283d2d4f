package controllers

import (
	"net/http"

	"github.com/Tshegofatso85/Footprint-Logger/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Svc *services.WeeklyGoalService
}

func NewGoalController(svc *services.WeeklyGoalService) *GoalController {
	return &GoalController{Svc: svc}
}

// Weekly recomputes the caller's weekly-goal progress. The result also goes
// out through the notification sinks as a side effect.
func (gc *GoalController) Weekly(c *gin.Context) {
	uid := c.GetUint("userID")

	out, err := gc.Svc.Analyse(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
