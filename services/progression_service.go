package services

import (
	"log"
	"time"

	"github.com/davidgrezoski/vitaflow/models"

	"gorm.io/gorm"
)

// XP earned per qualifying action.
const (
	XPMealLogged    = 15
	XPWaterLogged   = 5
	XPWorkoutLogged = 50
)

const dateLayout = "2006-01-02"

// ApplyXP advances the (xp, level) state machine. The threshold for the
// current level is level*100; overflow carries the remainder forward and the
// carry loops, so one oversized award can advance several levels. Returns the
// new state and whether at least one level was gained.
func ApplyXP(xp, level, amount int) (newXP, newLevel int, leveledUp bool) {
	newXP = xp + amount
	newLevel = level
	for newXP >= newLevel*100 {
		newXP -= newLevel * 100
		newLevel++
		leveledUp = true
	}
	return newXP, newLevel, leveledUp
}

// NextStreak evaluates the streak transition for a qualifying activity on
// `today`. lastLogDate and today are calendar dates (YYYY-MM-DD; lastLogDate
// may be empty for a fresh account). changed reports whether the caller must
// persist a new streak and last-log date; a second log on the same day is a
// no-op.
func NextStreak(lastLogDate, today string, streak int) (newStreak int, changed bool) {
	if lastLogDate == today {
		return streak, false
	}

	if lastLogDate != "" {
		if last, err := time.Parse(dateLayout, lastLogDate); err == nil {
			if last.AddDate(0, 0, 1).Format(dateLayout) == today {
				return streak + 1, true
			}
		}
	}

	// Gap of 2+ days or no prior activity: the new day itself counts,
	// so the streak restarts at 1, not 0.
	return 1, true
}

// ProgressionService applies gamification transitions to persisted profiles
// and fans out level-up events. The profile is always passed in explicitly;
// the engine never reads ambient state.
type ProgressionService struct {
	db  *gorm.DB
	bus *EventBus
}

func NewProgressionService(db *gorm.DB, bus *EventBus) *ProgressionService {
	return &ProgressionService{db: db, bus: bus}
}

// AwardXP adds XP for one action and, when the action is streak-qualifying
// (meal logs), advances the streak. The write covers only the gamification
// columns. The level-up notification is emitted once per transition,
// fire-and-forget.
func (p *ProgressionService) AwardXP(user *models.User, amount int, qualifying bool) error {
	newXP, newLevel, leveledUp := ApplyXP(user.XP, user.Level, amount)

	updates := map[string]any{
		"xp":    newXP,
		"level": newLevel,
	}

	if qualifying {
		today := time.Now().Format(dateLayout)
		if streak, changed := NextStreak(user.LastLogDate, today, user.CurrentStreak); changed {
			updates["current_streak"] = streak
			updates["last_log_date"] = today
			user.CurrentStreak = streak
			user.LastLogDate = today
		}
	}

	if err := p.db.Model(user).Updates(updates).Error; err != nil {
		return err
	}
	user.XP = newXP
	user.Level = newLevel

	if leveledUp && p.bus != nil {
		p.bus.EmitLevelUp(user.ID, newLevel)
	}
	return nil
}

// AwardXPBestEffort is AwardXP for call sites where the primary write already
// succeeded (the meal row is in) and a progression failure must not fail the
// request. The partial state is logged and accepted: a meal without its XP is
// the documented, eventually-correctable inconsistency.
func (p *ProgressionService) AwardXPBestEffort(user *models.User, amount int, qualifying bool) {
	if err := p.AwardXP(user, amount, qualifying); err != nil {
		log.Printf("xp award failed for user %d: %v", user.ID, err)
	}
}
