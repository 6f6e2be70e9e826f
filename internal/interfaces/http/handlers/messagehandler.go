package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/message/dto"
	"helpdesk/internal/application/message/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateMessageExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateMessageCommand) (*dto.MessageView, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, query usecases.ListMessagesQuery) (*usecases.ListMessagesResult, error)
}

type UpdateMessageExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateMessageCommand) (*dto.MessageView, error)
}

type DeleteMessageExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteMessageCommand) error
}

type MessageHandler struct {
	createUC CreateMessageExecutor
	listUC   ListMessagesExecutor
	updateUC UpdateMessageExecutor
	deleteUC DeleteMessageExecutor
	logger   logger.Interface
}

func NewMessageHandler(
	createUC CreateMessageExecutor,
	listUC ListMessagesExecutor,
	updateUC UpdateMessageExecutor,
	deleteUC DeleteMessageExecutor,
) *MessageHandler {
	return &MessageHandler{
		createUC: createUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type messageContentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateMessage handles POST /tickets/:id/messages.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	ticketID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req messageContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateMessageCommand{
		Actor:    actor,
		TicketID: ticketID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListMessages handles GET /tickets/:id/messages.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	ticketID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListMessagesQuery{
		TicketID:   ticketID,
		Pagination: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, utils.NewPagedResponse(result.Messages, result.Total, p))
}

// UpdateMessage handles PUT /messages/:id.
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	messageID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req messageContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateMessageCommand{
		Actor:     actor,
		MessageID: messageID,
		Content:   req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}

// DeleteMessage handles DELETE /messages/:id.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	messageID, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteMessageCommand{
		Actor:     actor,
		MessageID: messageID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "Message deleted successfully")
}
