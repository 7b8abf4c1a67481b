package utils

import (
	"testing"
	"time"
)

func TestEvaluateTrial(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		upgraded  bool
		expected  TrialStatus
	}{
		{
			name:      "created earlier today",
			createdAt: now.Add(-5 * time.Hour),
			expected:  TrialStatus{IsExpired: false, DaysRemaining: 3},
		},
		{
			name:      "last trial day",
			createdAt: now.Add(-72 * time.Hour),
			expected:  TrialStatus{IsExpired: false, DaysRemaining: 1},
		},
		{
			name:      "just expired",
			createdAt: now.Add(-96 * time.Hour),
			expected:  TrialStatus{IsExpired: true, DaysRemaining: 0},
		},
		{
			name:      "long expired clamps to zero",
			createdAt: now.AddDate(0, 0, -30),
			expected:  TrialStatus{IsExpired: true, DaysRemaining: 0},
		},
		{
			name:      "upgraded account ignores trial age",
			createdAt: now.AddDate(0, 0, -30),
			upgraded:  true,
			expected:  TrialStatus{IsExpired: false, DaysRemaining: ProDaysRemaining},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateTrial(tt.createdAt, now, tt.upgraded, 3)
			if got != tt.expected {
				t.Errorf("EvaluateTrial() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
