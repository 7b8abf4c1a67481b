package services

import (
	"time"

	"github.com/davidgrezoski/vitaflow/models"

	"gorm.io/gorm"
)

// WaterLog is the day's aggregate: current is always the sum of today's
// entry amounts, recomputed on read.
type WaterLog struct {
	Current int                 `json:"current"`
	Goal    int                 `json:"goal"`
	History []models.WaterEntry `json:"history"`
}

type WaterService struct {
	db          *gorm.DB
	progression *ProgressionService
	bus         *EventBus
}

func NewWaterService(db *gorm.DB, progression *ProgressionService, bus *EventBus) *WaterService {
	return &WaterService{db: db, progression: progression, bus: bus}
}

// Log inserts one intake entry, awards XP (water logs don't qualify for the
// streak) and emits the goal-reached achievement exactly when the entry
// crosses the goal line.
func (s *WaterService) Log(user *models.User, amount int) (*WaterLog, error) {
	before, err := s.Today(user)
	if err != nil {
		return nil, err
	}

	entry := &models.WaterEntry{UserID: user.ID, Amount: amount}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	s.progression.AwardXPBestEffort(user, XPWaterLogged, false)

	if s.bus != nil && before.Current < before.Goal && before.Current+amount >= before.Goal {
		s.bus.EmitAchievement(user.ID, "Hidratação completa! 💧")
	}

	before.Current += amount
	before.History = append(before.History, *entry)
	return before, nil
}

// Today rebuilds the day's aggregate from the entry rows, in insertion order.
func (s *WaterService) Today(user *models.User) (*WaterLog, error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)

	var entries []models.WaterEntry
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", user.ID, start, end).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	total := 0
	for _, e := range entries {
		total += e.Amount
	}

	goal := user.WaterGoal
	if goal <= 0 {
		goal = 2500
	}

	return &WaterLog{Current: total, Goal: goal, History: entries}, nil
}
