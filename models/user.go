package models

import (
	"gorm.io/gorm"
)

// User holds account, biometric and gamification state.
//
// BMR and TDEE are derived columns: they are only ever written together by the
// profile-edit flow, recomputed from the same five biometric inputs. XP, Level,
// CurrentStreak and LastLogDate are owned by the progression engine.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string

	Age           int
	Weight        float64 // kg
	Height        float64 // cm
	Gender        string  // "male" | "female"
	ActivityLevel string  // sedentary | light | moderate | active | very_active
	Goal          string  // lose | maintain | gain

	BMR  int // kcal, derived
	TDEE int // kcal, derived

	WaterGoal int `gorm:"default:2500"` // ml
	AvatarURL string

	SubscriptionStatus string `gorm:"size:10;default:trial"` // "trial" | "pro"

	XP            int `gorm:"default:0"`
	Level         int `gorm:"default:1"`
	CurrentStreak int `gorm:"default:0"`
	// Stored as a plain calendar date (YYYY-MM-DD, empty = never logged) so
	// streak math can't be shifted by timezone conversion in the driver.
	LastLogDate string `gorm:"size:10"`

	ResetToken    string
	ResetTokenExp int64 // unix seconds, 0 = none
}
