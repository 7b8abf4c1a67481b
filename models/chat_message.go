package models

import (
	"gorm.io/gorm"
)

// ChatMessage is one turn of the coaching chat. ClientID carries the
// client-generated uuid of the optimistic local copy so the caller can
// reconcile its tentative record with the persisted row. The composite
// unique index makes retries of the same client id idempotent: a resend
// after a reported persistence failure can never duplicate the turn.
type ChatMessage struct {
	gorm.Model
	UserID   uint   `gorm:"not null;uniqueIndex:idx_chat_user_client"`
	ClientID string `gorm:"size:36;uniqueIndex:idx_chat_user_client"`
	Role     string `gorm:"size:10;not null"` // "user" | "assistant"
	Content  string `gorm:"type:text"`
}
