// Package handler contains the gin HTTP handlers. Handlers translate the
// error taxonomy into HTTP statuses; internal detail is logged server-side
// and never leaks to the caller.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/logger"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types/interfaces"
)

// ChatHandler serves POST /api/chat
type ChatHandler struct {
	service interfaces.ChatService
}

// NewChatHandler creates a chat handler
func NewChatHandler(service interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles one chat request
func (h *ChatHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages must be an array"})
		return
	}

	reply, err := h.service.Chat(ctx, req.Messages)
	if err != nil {
		if errors.Is(err, types.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "messages must be an array"})
			return
		}
		logger.Errorf(ctx, "chat request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, types.ChatReply{Reply: reply})
}
