package models

import (
	"gorm.io/gorm"
)

type Workout struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	MuscleGroup string
	// JSON-encoded []Exercise. The exercise list is opaque to the backend —
	// it is produced by the plan generator and rendered by the client.
	Exercises string `gorm:"type:text"`
}

type Exercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest,omitempty"`
}
