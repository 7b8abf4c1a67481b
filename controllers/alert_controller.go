package controllers

import (
	"net/http"

	"github.com/davidgrezoski/vitaflow/config"
	"github.com/davidgrezoski/vitaflow/models"

	"github.com/gin-gonic/gin"
)

// ListAlerts returns the persisted gamification notifications, newest first,
// for clients that were offline when the event fired.
func ListAlerts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var alerts []models.Alert
	if err := config.DB.
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
