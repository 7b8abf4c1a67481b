package utils

import "testing"

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		gender   string
		expected int
	}{
		{"male", 70, 170, 25, "male", 1643},
		{"female", 60, 165, 30, "female", 1320},
		{"unspecified gender uses female offset", 60, 165, 30, "", 1320},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBMR(tt.weight, tt.height, tt.age, tt.gender)
			if got != tt.expected {
				t.Errorf("CalculateBMR(%v, %v, %d, %q) = %d, want %d",
					tt.weight, tt.height, tt.age, tt.gender, got, tt.expected)
			}
		})
	}
}

func TestCalculateTDEE(t *testing.T) {
	tests := []struct {
		name     string
		bmr      int
		activity string
		expected int
	}{
		{"sedentary", 1643, "sedentary", 1972},
		{"light", 1643, "light", 2259},
		{"moderate", 1643, "moderate", 2547},
		{"active", 1643, "active", 2834},
		{"very active", 1643, "very_active", 3122},
		{"unknown falls back to sedentary", 1643, "couch", 1972},
		{"empty falls back to sedentary", 1643, "", 1972},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTDEE(tt.bmr, tt.activity)
			if got != tt.expected {
				t.Errorf("CalculateTDEE(%d, %q) = %d, want %d", tt.bmr, tt.activity, got, tt.expected)
			}
		})
	}
}

func TestCalculateMacroGoals(t *testing.T) {
	tests := []struct {
		name     string
		tdee     int
		goal     string
		expected MacroGoal
	}{
		{"lose cuts 500", 2000, "lose", MacroGoal{Calories: 1500, Protein: 113, Carbs: 150, Fat: 50}},
		{"gain adds 500", 2000, "gain", MacroGoal{Calories: 2500, Protein: 188, Carbs: 250, Fat: 83}},
		{"maintain keeps tdee", 2000, "maintain", MacroGoal{Calories: 2000, Protein: 150, Carbs: 200, Fat: 67}},
		{"unknown goal keeps tdee", 2000, "bulk", MacroGoal{Calories: 2000, Protein: 150, Carbs: 200, Fat: 67}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMacroGoals(tt.tdee, tt.goal)
			if got != tt.expected {
				t.Errorf("CalculateMacroGoals(%d, %q) = %+v, want %+v", tt.tdee, tt.goal, got, tt.expected)
			}
		})
	}
}
