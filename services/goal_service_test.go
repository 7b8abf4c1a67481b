package services

import (
	"testing"

	"github.com/davidgrezoski/vitaflow/models"
	"github.com/davidgrezoski/vitaflow/utils"
)

func TestAggregateDayEmpty(t *testing.T) {
	stats := AggregateDay(nil, nil)

	if stats.Consumed != (ConsumedMacros{}) {
		t.Errorf("empty day consumed = %+v, want zeros", stats.Consumed)
	}
	if stats.Goals != DefaultGoals {
		t.Errorf("goals without profile = %+v, want defaults %+v", stats.Goals, DefaultGoals)
	}
}

func TestAggregateDaySumsMeals(t *testing.T) {
	meals := []models.Meal{
		{Name: "café da manhã", Calories: 350, Protein: 20, Carbs: 40, Fat: 12},
		{Name: "almoço", Calories: 700, Protein: 45, Carbs: 80, Fat: 20},
		{Name: "lanche", Calories: 150, Protein: 10, Carbs: 15, Fat: 5},
	}
	user := &models.User{TDEE: 2500, Goal: "lose"}

	stats := AggregateDay(meals, user)

	wantConsumed := ConsumedMacros{Calories: 1200, Protein: 75, Carbs: 135, Fat: 37}
	if stats.Consumed != wantConsumed {
		t.Errorf("consumed = %+v, want %+v", stats.Consumed, wantConsumed)
	}

	wantGoals := utils.MacroGoal{Calories: 2000, Protein: 150, Carbs: 200, Fat: 67}
	if stats.Goals != wantGoals {
		t.Errorf("goals = %+v, want %+v", stats.Goals, wantGoals)
	}
}

func TestAggregateDayPure(t *testing.T) {
	meals := []models.Meal{
		{Calories: 100, Protein: 5, Carbs: 10, Fat: 2},
		{Calories: 200, Protein: 15, Carbs: 20, Fat: 8},
	}
	user := &models.User{TDEE: 2200, Goal: "gain"}

	first := AggregateDay(meals, user)
	second := AggregateDay(meals, user)
	if first != second {
		t.Errorf("repeated aggregation differs: %+v vs %+v", first, second)
	}

	reversed := []models.Meal{meals[1], meals[0]}
	if got := AggregateDay(reversed, user); got != first {
		t.Errorf("order-dependent aggregation: %+v vs %+v", got, first)
	}

	if meals[0].Calories != 100 || user.TDEE != 2200 {
		t.Error("aggregation mutated its inputs")
	}
}

func TestAggregateDayZeroTDEEUsesDefaults(t *testing.T) {
	user := &models.User{Goal: "lose"}
	stats := AggregateDay(nil, user)
	if stats.Goals != DefaultGoals {
		t.Errorf("goals with unset TDEE = %+v, want defaults", stats.Goals)
	}
}
