package models

import (
	"gorm.io/gorm"
)

// Meal is one logged food entry. Name keeps the parsed quantity+unit prefix
// ("200g arroz") so the UI can render exactly what the user typed. Immutable
// once created, except for deletion; scoped to a calendar day for aggregation.
type Meal struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	Name     string
	Calories int
	Protein  int // g
	Carbs    int // g
	Fat      int // g
}
