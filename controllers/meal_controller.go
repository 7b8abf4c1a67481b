package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/davidgrezoski/vitaflow/services"
	"github.com/davidgrezoski/vitaflow/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

// LogMeal accepts one line of free text ("200g arroz") and runs the full
// parse → resolve → persist → award pipeline.
func (mc *MealController) LogMeal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		Input string `json:"input" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.LogFromText(c.Request.Context(), user, body.Input)
	switch {
	case errors.Is(err, utils.ErrParseFailure):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNutritionLookupFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "retryable": true})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, meal)
	}
}

func (mc *MealController) ListToday(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	meals, err := mc.Meals.ListToday(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.Meals.Delete(user.ID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
