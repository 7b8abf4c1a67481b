package controllers

import (
	"net/http"

	"github.com/davidgrezoski/vitaflow/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.BuildProfileView(user))
}

func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateProfile(user, input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.BuildProfileView(user))
}

// GetEntitlement re-derives the trial status; it is never cached or stored.
func GetEntitlement(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	view := services.BuildProfileView(user)
	c.JSON(http.StatusOK, gin.H{
		"subscription_status": view.SubscriptionStatus,
		"trial":               view.Trial,
	})
}

func Upgrade(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	if err := services.UpgradeToPro(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription_status": "pro"})
}
