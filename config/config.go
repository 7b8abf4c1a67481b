package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davidgrezoski/vitaflow/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// TrialDays is how long a fresh account keeps full access before the
// entitlement check starts blocking. Configurable because the app shipped
// with both 3- and 30-day trials at different points.
var TrialDays = 3

// GeminiModels is the ordered fallback list for generative calls. The first
// model that answers wins; order is significant.
var GeminiModels = []string{
	"gemini-1.5-flash",
	"gemini-2.0-flash",
	"gemini-1.5-pro",
}

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	if v := os.Getenv("TRIAL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			TrialDays = n
		}
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.WaterEntry{},
		&models.Workout{},
		&models.ChatMessage{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
