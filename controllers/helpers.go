package controllers

import (
	"net/http"

	"github.com/davidgrezoski/vitaflow/config"
	"github.com/davidgrezoski/vitaflow/models"

	"github.com/gin-gonic/gin"
)

// currentUser loads the authenticated user set by the auth middleware.
// Aborts the request with 401 when the account is gone.
func currentUser(c *gin.Context) (*models.User, bool) {
	email := c.GetString("email")
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return &user, true
}
