package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/davidgrezoski/vitaflow/config"
	"github.com/davidgrezoski/vitaflow/models"
	"github.com/davidgrezoski/vitaflow/utils"
)

// ProfileInput is the profile-edit payload. Zero-valued fields are left
// untouched.
type ProfileInput struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"` // kg
	Height        float64 `json:"height"` // cm
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	WaterGoal     int     `json:"water_goal"`
	Avatar        string  `json:"avatar"` // base64 data URL
}

var validGenders = map[string]bool{"male": true, "female": true}
var validGoals = map[string]bool{"lose": true, "maintain": true, "gain": true}
var validActivityLevels = map[string]bool{
	"sedentary": true, "light": true, "moderate": true,
	"active": true, "very_active": true,
}

// validateBiometrics guards the formula library's boundary: the formulas
// themselves don't validate, so implausible input must be stopped here.
func validateBiometrics(u *models.User) error {
	if u.Age <= 0 || u.Age > 130 {
		return errors.New("age out of plausible range")
	}
	if u.Weight < 10 || u.Weight > 400 {
		return errors.New("weight out of plausible range")
	}
	if u.Height < 50 || u.Height > 250 {
		return errors.New("height out of plausible range")
	}
	if !validGenders[u.Gender] {
		return errors.New("gender must be male or female")
	}
	if !validActivityLevels[u.ActivityLevel] {
		return errors.New("unknown activity level")
	}
	if !validGoals[u.Goal] {
		return errors.New("goal must be lose, maintain or gain")
	}
	return nil
}

// UpdateProfile applies a profile edit. Whenever any biometric field changed,
// BMR and TDEE are recomputed together from the full set of inputs — they are
// never written independently. created_at is never touched here, so an edit
// can't restart the trial.
func UpdateProfile(user *models.User, input ProfileInput) error {
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.WaterGoal > 0 {
		user.WaterGoal = input.WaterGoal
	}

	biometricsChanged := false
	if input.Age > 0 {
		user.Age = input.Age
		biometricsChanged = true
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
		biometricsChanged = true
	}
	if input.Height > 0 {
		user.Height = input.Height
		biometricsChanged = true
	}
	if input.Gender != "" {
		user.Gender = input.Gender
		biometricsChanged = true
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
		biometricsChanged = true
	}
	if input.Goal != "" {
		user.Goal = input.Goal
		biometricsChanged = true
	}

	if biometricsChanged {
		if err := validateBiometrics(user); err != nil {
			return err
		}
		user.BMR = utils.CalculateBMR(user.Weight, user.Height, user.Age, user.Gender)
		user.TDEE = utils.CalculateTDEE(user.BMR, user.ActivityLevel)
	}

	if input.Avatar != "" {
		url, err := utils.UploadBase64ImageToS3(input.Avatar, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload avatar: %w", err)
		}
		user.AvatarURL = url
	}

	return config.DB.Save(user).Error
}

// ProfileView is the profile endpoint payload: stored state plus the derived
// trial status and BMI, re-derived on every read.
type ProfileView struct {
	ID            uint    `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	BMR           int     `json:"bmr"`
	TDEE          int     `json:"tdee"`
	WaterGoal     int     `json:"water_goal"`
	AvatarURL     string  `json:"avatar_url,omitempty"`

	BMI         float64 `json:"bmi,omitempty"`
	BMICategory string  `json:"bmi_category,omitempty"`

	SubscriptionStatus string            `json:"subscription_status"`
	Trial              utils.TrialStatus `json:"trial"`

	XP            int    `json:"xp"`
	Level         int    `json:"level"`
	CurrentStreak int    `json:"current_streak"`
	LastLogDate   string `json:"last_log_date,omitempty"`
}

func BuildProfileView(user *models.User) ProfileView {
	v := ProfileView{
		ID:                 user.ID,
		Email:              user.Email,
		Name:               user.Name,
		Age:                user.Age,
		Weight:             user.Weight,
		Height:             user.Height,
		Gender:             user.Gender,
		ActivityLevel:      user.ActivityLevel,
		Goal:               user.Goal,
		BMR:                user.BMR,
		TDEE:               user.TDEE,
		WaterGoal:          user.WaterGoal,
		AvatarURL:          user.AvatarURL,
		SubscriptionStatus: user.SubscriptionStatus,
		XP:                 user.XP,
		Level:              user.Level,
		CurrentStreak:      user.CurrentStreak,
		LastLogDate:        user.LastLogDate,
	}

	v.Trial = utils.EvaluateTrial(
		user.CreatedAt, time.Now(),
		user.SubscriptionStatus == "pro",
		config.TrialDays,
	)

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		v.BMI = bmi
		v.BMICategory = utils.BMICategory(bmi)
	}

	return v
}

// UpgradeToPro flips the subscription flag; from then on the entitlement
// evaluator short-circuits to always-active.
func UpgradeToPro(user *models.User) error {
	user.SubscriptionStatus = "pro"
	return config.DB.Model(user).Update("subscription_status", "pro").Error
}
