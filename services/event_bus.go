package services

import (
	"fmt"
	"time"

	"github.com/davidgrezoski/vitaflow/models"

	"gorm.io/gorm"
)

// EventBus fans gamification events out to the alert table, the websocket
// hub and push notifications. Emission is fire-and-forget: a dropped
// notification is acceptable, a blocked meal log is not.
type EventBus struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

func NewEventBus(db *gorm.DB, rt *RealtimeHub, ps *PushService) *EventBus {
	return &EventBus{db: db, rt: rt, ps: ps}
}

// EmitLevelUp surfaces a level-up exactly once per transition. The push leg
// runs on its own goroutine so slow SNS round-trips never block the caller.
func (b *EventBus) EmitLevelUp(userID uint, newLevel int) {
	b.emit(userID, "level_up", fmt.Sprintf("Você alcançou o nível %d! 🏆", newLevel), map[string]any{
		"kind":  "level_up",
		"level": newLevel,
	})
}

// EmitAchievement surfaces a one-off achievement (water goal hit, protein
// goal hit).
func (b *EventBus) EmitAchievement(userID uint, title string) {
	b.emit(userID, "achievement", title, map[string]any{
		"kind":  "achievement",
		"title": title,
	})
}

func (b *EventBus) emit(userID uint, typ, message string, payload map[string]any) {
	if b.db != nil {
		a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
		_ = b.db.Create(a).Error
	}
	if b.rt != nil {
		b.rt.Broadcast(userID, payload)
	}
	if b.ps != nil {
		go b.ps.PushToUser(userID, "VitaFlow", message, map[string]string{"type": typ})
	}
}
