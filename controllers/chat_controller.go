package controllers

import (
	"errors"
	"net/http"

	"github.com/davidgrezoski/vitaflow/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

func (cc *ChatController) SendMessage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		ClientID string `json:"client_id"`
		Content  string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := cc.Chat.SendMessage(c.Request.Context(), user.ID, body.ClientID, body.Content)
	if err != nil {
		if errors.Is(err, services.ErrAIBackendUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Não foi possível conectar com a IA no momento.", "retryable": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (cc *ChatController) GetHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	history, err := cc.Chat.History(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
