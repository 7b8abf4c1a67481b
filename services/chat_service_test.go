package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/davidgrezoski/vitaflow/models"
)

// SendMessage relies on the schema to make retries idempotent: a resent
// client id must land on the existing row, never a second one. Both key
// columns have to share the composite unique index for that to hold.
func TestChatMessageRetryKeyIsUnique(t *testing.T) {
	typ := reflect.TypeOf(models.ChatMessage{})
	const idx = "uniqueIndex:idx_chat_user_client"

	for _, field := range []string{"UserID", "ClientID"} {
		f, ok := typ.FieldByName(field)
		if !ok {
			t.Fatalf("ChatMessage has no %s field", field)
		}
		if !strings.Contains(f.Tag.Get("gorm"), idx) {
			t.Errorf("ChatMessage.%s gorm tag %q lacks %q", field, f.Tag.Get("gorm"), idx)
		}
	}
}
