package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/garagedesk/garage-scheduler/internal/httperr"
	"github.com/garagedesk/garage-scheduler/internal/httpresp"
	"github.com/garagedesk/garage-scheduler/internal/infra/repository"
	"github.com/garagedesk/garage-scheduler/internal/middleware"
	"github.com/garagedesk/garage-scheduler/internal/models"
)

type ChatHandler struct {
	chat *repository.ChatGormRepository
}

func NewChatHandler(chat *repository.ChatGormRepository) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// --------- Requests ---------

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// --------- Handlers ---------

// Conversation lists both directions of the exchange with one participant,
// newest message first.
func (h *ChatHandler) Conversation(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	participant := c.Param("participant")

	messages, err := h.chat.Conversation(c.Request.Context(), userID, participant)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, messages)
}

func (h *ChatHandler) Send(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	participant := c.Param("participant")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	msg := models.ChatMessage{
		SenderID:   userID,
		ReceiverID: participant,
		Text:       req.Text,
	}

	if err := h.chat.Create(c.Request.Context(), &msg); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, msg)
}

func (h *ChatHandler) MarkRead(c *gin.Context) {
	if err := h.chat.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
