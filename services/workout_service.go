package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/davidgrezoski/vitaflow/models"
	"github.com/davidgrezoski/vitaflow/utils"

	"gorm.io/gorm"
)

// WorkoutPlan is one generated workout as the client consumes it.
type WorkoutPlan struct {
	Name        string            `json:"name"`
	MuscleGroup string            `json:"muscleGroup"`
	Exercises   []models.Exercise `json:"exercises"`
}

// WorkoutPreferences drive plan generation.
type WorkoutPreferences struct {
	Goal      string `json:"goal"`
	Level     string `json:"level"`
	Equipment string `json:"equipment"`
}

type WorkoutService struct {
	db          *gorm.DB
	gen         textGenerator
	progression *ProgressionService
}

func NewWorkoutService(db *gorm.DB, gen textGenerator, progression *ProgressionService) *WorkoutService {
	return &WorkoutService{db: db, gen: gen, progression: progression}
}

// GeneratePlan asks the generative backend for a structured workout list.
// A malformed answer degrades to an empty plan instead of an error — the
// client offers a retry, the user is never hard-blocked.
func (s *WorkoutService) GeneratePlan(ctx context.Context, prefs WorkoutPreferences) ([]WorkoutPlan, error) {
	prompt := fmt.Sprintf(`Crie um plano de treino JSON para: %s, Nível: %s, Equipamento: %s.
Retorne APENAS JSON válido com esta estrutura:
[{"name": "Nome", "muscleGroup": "Grupo", "exercises": [{"name": "Exercicio", "sets": "3", "reps": "12"}]}]`,
		prefs.Goal, prefs.Level, prefs.Equipment)

	text, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := utils.ExtractJSONArray(text)
	if err != nil {
		log.Printf("workout plan unparseable: %q", text)
		return []WorkoutPlan{}, nil
	}

	var plans []WorkoutPlan
	if err := json.Unmarshal([]byte(payload), &plans); err != nil {
		log.Printf("workout plan decode failed: %v", err)
		return []WorkoutPlan{}, nil
	}

	for i := range plans {
		if plans[i].Name == "" {
			plans[i].Name = "Treino Personalizado"
		}
		if plans[i].MuscleGroup == "" {
			plans[i].MuscleGroup = "Geral"
		}
		if plans[i].Exercises == nil {
			plans[i].Exercises = []models.Exercise{}
		}
	}
	return plans, nil
}

// Add persists a workout and awards its XP. Workout logs don't advance the
// streak; only meals qualify.
func (s *WorkoutService) Add(user *models.User, name, muscleGroup string, exercises []models.Exercise) (*models.Workout, error) {
	encoded, err := json.Marshal(exercises)
	if err != nil {
		return nil, err
	}

	w := &models.Workout{
		UserID:      user.ID,
		Name:        name,
		MuscleGroup: muscleGroup,
		Exercises:   string(encoded),
	}
	if err := s.db.Create(w).Error; err != nil {
		return nil, err
	}

	s.progression.AwardXPBestEffort(user, XPWorkoutLogged, false)

	return w, nil
}

func (s *WorkoutService) List(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) Delete(userID, workoutID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&models.Workout{}).Error
}
