package utils

import "math"

// activityMultipliers maps activity level strings to their TDEE factor.
// Single source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// MacroGoal is the derived daily target. Recomputed on every read, never
// persisted.
type MacroGoal struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor.
// Inputs are assumed pre-validated (positive weight/height/age, valid gender);
// validation belongs at the profile-edit boundary, not here.
func CalculateBMR(weightKg, heightCm float64, ageYears int, gender string) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// CalculateTDEE multiplies BMR by the activity factor. An unknown activity
// level falls back to sedentary (1.2) rather than erroring — same behavior
// the client app shipped with.
func CalculateTDEE(bmr int, activityLevel string) int {
	factor, ok := activityMultipliers[activityLevel]
	if !ok {
		factor = 1.2
	}
	return int(math.Round(float64(bmr) * factor))
}

// CalculateMacroGoals derives the daily macro targets from TDEE and the
// weight-change objective: ±500 kcal for lose/gain, then a 30/40/30
// protein/carb/fat split (protein and carbs at 4 kcal/g, fat at 9 kcal/g).
// Each component is rounded independently.
func CalculateMacroGoals(tdee int, goal string) MacroGoal {
	target := float64(tdee)
	switch goal {
	case "lose":
		target -= 500
	case "gain":
		target += 500
	}

	return MacroGoal{
		Calories: int(math.Round(target)),
		Protein:  int(math.Round(target * 0.30 / 4)),
		Carbs:    int(math.Round(target * 0.40 / 4)),
		Fat:      int(math.Round(target * 0.30 / 9)),
	}
}
