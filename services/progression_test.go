package services

import "testing"

func TestApplyXP(t *testing.T) {
	tests := []struct {
		name      string
		xp        int
		level     int
		amount    int
		wantXP    int
		wantLevel int
		wantUp    bool
	}{
		{"below threshold", 0, 1, 50, 50, 1, false},
		{"overflow carries remainder", 90, 1, 15, 5, 2, true},
		{"exact threshold levels up", 85, 1, 15, 0, 2, true},
		{"higher level threshold scales", 150, 2, 40, 190, 2, false},
		{"large award crosses several levels", 90, 1, 350, 140, 3, true},
		{"zero award is a no-op", 40, 3, 0, 40, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotXP, gotLevel, gotUp := ApplyXP(tt.xp, tt.level, tt.amount)
			if gotXP != tt.wantXP || gotLevel != tt.wantLevel || gotUp != tt.wantUp {
				t.Errorf("ApplyXP(%d, %d, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.xp, tt.level, tt.amount, gotXP, gotLevel, gotUp, tt.wantXP, tt.wantLevel, tt.wantUp)
			}
		})
	}
}

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name        string
		lastLogDate string
		today       string
		streak      int
		wantStreak  int
		wantChanged bool
	}{
		{"first ever activity", "", "2026-03-10", 0, 1, true},
		{"second log same day", "2026-03-10", "2026-03-10", 4, 4, false},
		{"consecutive day extends", "2026-03-09", "2026-03-10", 4, 5, true},
		{"two day gap resets to one", "2026-03-08", "2026-03-10", 9, 1, true},
		{"long gap resets to one", "2026-02-01", "2026-03-10", 30, 1, true},
		{"consecutive across month boundary", "2026-02-28", "2026-03-01", 2, 3, true},
		{"garbage stored date resets", "not-a-date", "2026-03-10", 7, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStreak, gotChanged := NextStreak(tt.lastLogDate, tt.today, tt.streak)
			if gotStreak != tt.wantStreak || gotChanged != tt.wantChanged {
				t.Errorf("NextStreak(%q, %q, %d) = (%d, %v), want (%d, %v)",
					tt.lastLogDate, tt.today, tt.streak, gotStreak, gotChanged, tt.wantStreak, tt.wantChanged)
			}
		})
	}
}
