package services

import (
	"time"

	"github.com/davidgrezoski/vitaflow/models"
	"github.com/davidgrezoski/vitaflow/utils"
)

// DefaultGoals is used until the profile has a computed TDEE.
var DefaultGoals = utils.MacroGoal{Calories: 2000, Protein: 150, Carbs: 200, Fat: 65}

// ConsumedMacros is the component-wise sum over a meal list.
type ConsumedMacros struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// DailyStats is the consumed-vs-goal view the dashboard renders.
type DailyStats struct {
	Consumed ConsumedMacros  `json:"consumed"`
	Goals    utils.MacroGoal `json:"goals"`
}

// AggregateDay combines logged meals with the profile's derived goals. Pure:
// order-independent over meals, tolerates an empty list, mutates neither
// input, and repeated calls on the same inputs yield identical output.
func AggregateDay(meals []models.Meal, user *models.User) DailyStats {
	var consumed ConsumedMacros
	for _, m := range meals {
		consumed.Calories += m.Calories
		consumed.Protein += m.Protein
		consumed.Carbs += m.Carbs
		consumed.Fat += m.Fat
	}

	goals := DefaultGoals
	if user != nil && user.TDEE > 0 {
		goals = utils.CalculateMacroGoals(user.TDEE, user.Goal)
	}

	return DailyStats{Consumed: consumed, Goals: goals}
}

// GoalService composes the pure aggregation with the day's persisted meals
// and water for the dashboard endpoint.
type GoalService struct {
	meals *MealService
	water *WaterService
}

func NewGoalService(meals *MealService, water *WaterService) *GoalService {
	return &GoalService{meals: meals, water: water}
}

// Dashboard is everything the home screen needs in one round of reads.
type Dashboard struct {
	Stats DailyStats `json:"daily_stats"`
	Water *WaterLog  `json:"water"`

	Level         int    `json:"level"`
	XP            int    `json:"xp"`
	XPToNextLevel int    `json:"xp_to_next_level"`
	CurrentStreak int    `json:"current_streak"`
	BMR           int    `json:"bmr"`
	TDEE          int    `json:"tdee"`
	LastLogDate   string `json:"last_log_date,omitempty"`
}

func (s *GoalService) TodayDashboard(user *models.User) (*Dashboard, error) {
	meals, err := s.meals.ListToday(user.ID)
	if err != nil {
		return nil, err
	}

	water, err := s.water.Today(user)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Stats:         AggregateDay(meals, user),
		Water:         water,
		Level:         user.Level,
		XP:            user.XP,
		XPToNextLevel: user.Level * 100,
		CurrentStreak: user.CurrentStreak,
		BMR:           user.BMR,
		TDEE:          user.TDEE,
		LastLogDate:   user.LastLogDate,
	}, nil
}

// DayStats returns the consumed-vs-goal view for an arbitrary past day.
func (s *GoalService) DayStats(user *models.User, date time.Time) (DailyStats, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	meals, err := s.meals.ListByDateRange(user.ID, start, end)
	if err != nil {
		return DailyStats{}, err
	}
	return AggregateDay(meals, user), nil
}
