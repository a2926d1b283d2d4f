package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Tshegofatso85/Footprint-Logger/services"
	"github.com/Tshegofatso85/Footprint-Logger/utils"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	Svc *services.SummaryService
}

func NewSummaryController(svc *services.SummaryService) *SummaryController {
	return &SummaryController{Svc: svc}
}

// MyTotal returns the caller's emission total for one day (?date, default today).
func (sc *SummaryController) MyTotal(c *gin.Context) {
	uid := c.GetUint("userID")

	day := utils.StartOfDayUTC(time.Now())
	if v := c.Query("date"); v != "" {
		d, err := utils.ParseDay(v)
		if err != nil {
			respondErr(c, err)
			return
		}
		day = d
	}

	out, err := sc.Svc.DailyTotal(c.Request.Context(), uid, day)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// WeeklySummary returns the 7-day window ending at ?end (default today) plus
// the current streak.
func (sc *SummaryController) WeeklySummary(c *gin.Context) {
	uid := c.GetUint("userID")

	end := utils.StartOfDayUTC(time.Now())
	if v := c.Query("end"); v != "" {
		d, err := utils.ParseDay(v)
		if err != nil {
			respondErr(c, err)
			return
		}
		end = d
	}

	out, err := sc.Svc.WeeklySummary(c.Request.Context(), uid, end)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CommunityAverage returns the average emission among users active in the
// optional ?from/?to range.
func (sc *SummaryController) CommunityAverage(c *gin.Context) {
	r, err := rangeFromQuery(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	out, err := sc.Svc.CommunityAverage(c.Request.Context(), r)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Leaderboard ranks the greenest users over the trailing ?days window.
func (sc *SummaryController) Leaderboard(c *gin.Context) {
	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}

	out, err := sc.Svc.Leaderboard(c.Request.Context(), days)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
