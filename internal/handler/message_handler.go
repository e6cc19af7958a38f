package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Rich-Wilkyness/social-media-api/shared/cqrs"
	"github.com/Rich-Wilkyness/social-media-api/shared/models"
	"github.com/gin-gonic/gin"
)

// MessageCommander defines the write-side operations used by MessageHandler.
type MessageCommander interface {
	CreateMessage(context.Context, cqrs.CreateMessageCommand) (*models.Message, error)
	UpdateMessage(context.Context, cqrs.UpdateMessageCommand) (*models.Message, error)
	DeleteMessage(context.Context, cqrs.DeleteMessageCommand) (*models.Message, error)
}

// MessageQuerier defines the read-side operations used by MessageHandler.
type MessageQuerier interface {
	GetMessage(context.Context, cqrs.GetMessageQuery) (*models.Message, error)
	ListMessages(context.Context, cqrs.ListMessagesQuery) ([]models.Message, error)
	ListAccountMessages(context.Context, cqrs.ListAccountMessagesQuery) ([]models.Message, error)
}

// MessageHandler serves the message routes.
//
// An absent message on GET or DELETE is answered with 200 and an empty body;
// a rejected create or update is answered with 400 and an empty body.
type MessageHandler struct {
	commands MessageCommander
	queries  MessageQuerier
}

type CreateMessageRequest struct {
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

type UpdateMessageRequest struct {
	MessageText string `json:"message_text"`
}

func NewMessageHandler(commands MessageCommander, queries MessageQuerier) *MessageHandler {
	return &MessageHandler{commands: commands, queries: queries}
}

func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.commands.CreateMessage(c.Request.Context(), cqrs.CreateMessageCommand{
		PostedBy:        req.PostedBy,
		MessageText:     req.MessageText,
		TimePostedEpoch: req.TimePostedEpoch,
	})
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// ListMessages always answers 200 with a JSON array.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	// Store failures are logged and counted by the query service; the route still answers [].
	messages, _ := h.queries.ListMessages(c.Request.Context(), cqrs.ListMessagesQuery{})
	c.JSON(http.StatusOK, orEmpty(messages))
}

func (h *MessageHandler) GetMessage(c *gin.Context) {
	messageID, ok := intParam(c, "message_id")
	if !ok {
		return
	}

	msg, err := h.queries.GetMessage(c.Request.Context(), cqrs.GetMessageQuery{MessageID: messageID})
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	messageID, ok := intParam(c, "message_id")
	if !ok {
		return
	}

	msg, err := h.commands.DeleteMessage(c.Request.Context(), cqrs.DeleteMessageCommand{MessageID: messageID})
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	messageID, ok := intParam(c, "message_id")
	if !ok {
		return
	}

	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.commands.UpdateMessage(c.Request.Context(), cqrs.UpdateMessageCommand{
		MessageID:   messageID,
		MessageText: req.MessageText,
	})
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// ListAccountMessages always answers 200 with a JSON array.
func (h *MessageHandler) ListAccountMessages(c *gin.Context) {
	accountID, ok := intParam(c, "account_id")
	if !ok {
		return
	}

	// Store failures are logged and counted by the query service; the route still answers [].
	messages, _ := h.queries.ListAccountMessages(c.Request.Context(), cqrs.ListAccountMessagesQuery{AccountID: accountID})
	c.JSON(http.StatusOK, orEmpty(messages))
}

// intParam parses an integer path parameter, answering 400 with an empty
// body when it is not one.
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func orEmpty(messages []models.Message) []models.Message {
	if messages == nil {
		return []models.Message{}
	}
	return messages
}
