package controllers

import (
	"net/http"

	"github.com/davidgrezoski/vitaflow/services"

	"github.com/gin-gonic/gin"
)

type DietController struct {
	Diet *services.DietService
}

func NewDietController(diet *services.DietService) *DietController {
	return &DietController{Diet: diet}
}

// GeneratePlan never fails: a total AI outage serves the canned fallback.
func (dc *DietController) GeneratePlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dc.Diet.GeneratePlan(c.Request.Context(), user))
}
