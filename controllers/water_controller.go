package controllers

import (
	"net/http"

	"github.com/davidgrezoski/vitaflow/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Water *services.WaterService
}

func NewWaterController(water *services.WaterService) *WaterController {
	return &WaterController{Water: water}
}

func (wc *WaterController) LogWater(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		Amount int `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logAggregate, err := wc.Water.Log(user, body.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, logAggregate)
}

func (wc *WaterController) GetToday(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	logAggregate, err := wc.Water.Today(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logAggregate)
}
