package models

import "time"

// Alert is a persisted gamification notification (level-up, achievement),
// kept so the client can show a history even when the websocket was closed
// at the moment the event fired.
type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Type      string `gorm:"size:20"` // "level_up" | "achievement"
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
