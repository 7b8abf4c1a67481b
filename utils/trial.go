package utils

import (
	"math"
	"time"
)

// ProDaysRemaining is the sentinel returned for upgraded accounts; the trial
// counter is meaningless once the subscription overrides it.
const ProDaysRemaining = 9999

// TrialStatus is derived per request, never persisted.
type TrialStatus struct {
	IsExpired     bool `json:"is_expired"`
	DaysRemaining int  `json:"days_remaining"`
}

// EvaluateTrial computes trial expiry from the account creation timestamp.
// The creation day counts as day one, so an account created today on a 3-day
// trial reports 3 days remaining. Upgraded accounts are always active.
func EvaluateTrial(createdAt, now time.Time, upgraded bool, trialDays int) TrialStatus {
	if upgraded {
		return TrialStatus{IsExpired: false, DaysRemaining: ProDaysRemaining}
	}

	diff := now.Sub(createdAt)
	if diff < 0 {
		diff = -diff
	}
	diffDays := int(math.Ceil(diff.Hours() / 24))

	remaining := trialDays - diffDays + 1
	if remaining < 0 {
		remaining = 0
	}

	return TrialStatus{
		IsExpired:     diffDays > trialDays,
		DaysRemaining: remaining,
	}
}
