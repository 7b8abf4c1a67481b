package models

import (
	"gorm.io/gorm"
)

// WaterEntry is one logged intake. The day's WaterLog aggregate (current
// total, goal, history) is recomputed from these rows; the total is always
// the sum of today's amounts, never stored separately.
type WaterEntry struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`
	Amount int  // ml
}
