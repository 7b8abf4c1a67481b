package services

import (
	"context"
	"log"

	"github.com/davidgrezoski/vitaflow/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Persona prompt for the coaching chat.
const nutritionistSystemPrompt = `Você é a Nutri Yasmin, uma nutricionista virtual inteligente, empática e profissional do aplicativo VitaFlow.
Seu objetivo é ajudar os usuários a atingirem seus objetivos de saúde.
Responda sempre em Português do Brasil. Seja concisa e use emojis.`

// chatGenerator is the conversational slice of the generative collaborator.
type chatGenerator interface {
	Chat(ctx context.Context, systemPrompt string, history []ChatTurn, message string) (string, error)
}

type ChatService struct {
	db  *gorm.DB
	gen chatGenerator
}

func NewChatService(db *gorm.DB, gen chatGenerator) *ChatService {
	return &ChatService{db: db, gen: gen}
}

// ChatReply is the result of one user turn. The client renders its own
// optimistic copy immediately; UserPersisted/AssistantPersisted tell it
// whether each side made it to storage or must be marked failed with a
// retry action (never silently dropped).
type ChatReply struct {
	UserMessage        *models.ChatMessage `json:"user_message"`
	AssistantMessage   *models.ChatMessage `json:"assistant_message"`
	UserPersisted      bool                `json:"user_persisted"`
	AssistantPersisted bool                `json:"assistant_persisted"`
}

// SendMessage runs one chat turn: persist the user's message, generate the
// assistant reply over the stored history, persist the reply. Persistence
// failures are logged and reported, not fatal — the generated reply is
// always returned when generation itself succeeded.
func (s *ChatService) SendMessage(ctx context.Context, userID uint, clientID, content string) (*ChatReply, error) {
	if clientID == "" {
		clientID = uuid.NewString()
	}

	history, err := s.History(userID)
	if err != nil {
		return nil, err
	}

	// FirstOrCreate keyed by (user_id, client_id): a client retrying after a
	// reported persistence failure resends the same client id and lands on
	// the existing row instead of inserting a duplicate turn.
	userMsg := &models.ChatMessage{
		UserID:   userID,
		ClientID: clientID,
		Role:     "user",
		Content:  content,
	}
	userPersisted := true
	if err := s.db.
		Where("user_id = ? AND client_id = ?", userID, clientID).
		FirstOrCreate(userMsg).Error; err != nil {
		log.Printf("chat user message persist failed: %v", err)
		userPersisted = false
	}

	turns := make([]ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, ChatTurn{Role: m.Role, Content: m.Content})
	}

	replyText, err := s.gen.Chat(ctx, nutritionistSystemPrompt, turns, content)
	if err != nil {
		return nil, err
	}

	assistantMsg := &models.ChatMessage{
		UserID:   userID,
		ClientID: uuid.NewString(),
		Role:     "assistant",
		Content:  replyText,
	}
	assistantPersisted := true
	if err := s.db.Create(assistantMsg).Error; err != nil {
		log.Printf("chat assistant message persist failed: %v", err)
		assistantPersisted = false
	}

	return &ChatReply{
		UserMessage:        userMsg,
		AssistantMessage:   assistantMsg,
		UserPersisted:      userPersisted,
		AssistantPersisted: assistantPersisted,
	}, nil
}

func (s *ChatService) History(userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}
