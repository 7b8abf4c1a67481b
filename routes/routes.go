package routes

import (
	"log"

	"github.com/davidgrezoski/vitaflow/config"
	"github.com/davidgrezoski/vitaflow/controllers"
	"github.com/davidgrezoski/vitaflow/middlewares"
	"github.com/davidgrezoski/vitaflow/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// collaborators
	gemini := services.NewGeminiService()
	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		// push is optional in local dev without AWS credentials
		log.Printf("push service disabled: %v", err)
		push = nil
	}

	bus := services.NewEventBus(config.DB, hub, push)
	progression := services.NewProgressionService(config.DB, bus)
	nutrition := services.NewNutritionService(gemini)

	mealSvc := services.NewMealService(config.DB, nutrition, progression)
	waterSvc := services.NewWaterService(config.DB, progression, bus)
	workoutSvc := services.NewWorkoutService(config.DB, gemini, progression)
	goalSvc := services.NewGoalService(mealSvc, waterSvc)
	dietSvc := services.NewDietService(gemini)
	chatSvc := services.NewChatService(config.DB, gemini)

	mealCtl := controllers.NewMealController(mealSvc)
	waterCtl := controllers.NewWaterController(waterSvc)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	dashCtl := controllers.NewDashboardController(goalSvc)
	dietCtl := controllers.NewDietController(dietSvc)
	chatCtl := controllers.NewChatController(chatSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.GET("/user/entitlement", controllers.GetEntitlement)
		api.POST("/user/upgrade", controllers.Upgrade)

		api.GET("/dashboard", dashCtl.GetDashboard)
		api.GET("/stats", dashCtl.GetDayStats)

		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals/today", mealCtl.ListToday)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)

		api.POST("/water", waterCtl.LogWater)
		api.GET("/water/today", waterCtl.GetToday)

		api.POST("/workouts/generate", workoutCtl.GeneratePlan)
		api.POST("/workouts", workoutCtl.AddWorkout)
		api.GET("/workouts", workoutCtl.ListWorkouts)
		api.DELETE("/workouts/:id", workoutCtl.DeleteWorkout)

		api.POST("/diet/generate", dietCtl.GeneratePlan)

		api.POST("/chat", chatCtl.SendMessage)
		api.GET("/chat/history", chatCtl.GetHistory)

		api.GET("/alerts", controllers.ListAlerts)
		api.GET("/ws/events", rtCtl.EventsWS)

		if push != nil {
			deviceCtl := controllers.NewDeviceController(push)
			api.POST("/devices", deviceCtl.RegisterDevice)
		}
	}

	return r
}
