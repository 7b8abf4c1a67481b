package services

import (
	"context"
	"strings"
	"time"

	"github.com/davidgrezoski/vitaflow/models"
	"github.com/davidgrezoski/vitaflow/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db          *gorm.DB
	nutrition   *NutritionService
	progression *ProgressionService
}

func NewMealService(db *gorm.DB, nutrition *NutritionService, progression *ProgressionService) *MealService {
	return &MealService{db: db, nutrition: nutrition, progression: progression}
}

// LogFromText runs the full meal-logging saga for one line of user input:
//
//  1. parse the quantity-first text (recoverable ErrParseFailure);
//  2. resolve macros, local table first then the generative estimator
//     (ErrNutritionLookupFailed aborts — nothing is persisted);
//  3. insert the meal row;
//  4. award XP and advance the streak, best-effort.
//
// Steps 3 and 4 are independent round-trips with no transaction across them;
// a meal that got stored without its XP is accepted and logged, the reverse
// order could corrupt progression state for a meal that never existed.
func (s *MealService) LogFromText(ctx context.Context, user *models.User, input string) (*models.Meal, error) {
	parsed, err := utils.ParseFoodInput(input)
	if err != nil {
		return nil, err
	}

	macros, err := s.nutrition.Resolve(ctx, parsed.Name, parsed.Amount, parsed.Unit)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:   user.ID,
		Name:     strings.TrimSpace(input),
		Calories: macros.Calories,
		Protein:  macros.Protein,
		Carbs:    macros.Carbs,
		Fat:      macros.Fat,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}

	s.progression.AwardXPBestEffort(user, XPMealLogged, true)

	return meal, nil
}

// ListToday returns the current day's meals in insertion order. Day boundary
// is local midnight.
func (s *MealService) ListToday(userID uint) ([]models.Meal, error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Delete(userID, mealID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}

func dayStartLocal(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}
