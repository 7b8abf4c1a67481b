package controllers

import (
	"net/http"
	"strconv"

	"github.com/davidgrezoski/vitaflow/models"
	"github.com/davidgrezoski/vitaflow/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: workouts}
}

func (wc *WorkoutController) GeneratePlan(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	var prefs services.WorkoutPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plans, err := wc.Workouts.GeneratePlan(c.Request.Context(), prefs)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "retryable": true})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (wc *WorkoutController) AddWorkout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		Name        string            `json:"name" binding:"required"`
		MuscleGroup string            `json:"muscle_group"`
		Exercises   []models.Exercise `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w, err := wc.Workouts.Add(user, body.Name, body.MuscleGroup, body.Exercises)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (wc *WorkoutController) ListWorkouts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	workouts, err := wc.Workouts.List(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}

	if err := wc.Workouts.Delete(user.ID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
