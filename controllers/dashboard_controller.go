package controllers

import (
	"net/http"
	"time"

	"github.com/davidgrezoski/vitaflow/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Goals *services.GoalService
}

func NewDashboardController(goals *services.GoalService) *DashboardController {
	return &DashboardController{Goals: goals}
}

// GetDashboard returns today's consumed-vs-goal stats, water aggregate and
// gamification snapshot in one response.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	dash, err := dc.Goals.TodayDashboard(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dash)
}

// GetDayStats returns consumed-vs-goal for a past day (?date=YYYY-MM-DD).
func (dc *DashboardController) GetDayStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	stats, err := dc.Goals.DayStats(user, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": dateStr, "stats": stats})
}
