package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketView, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketView, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type SearchTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.SearchTicketsQuery) (*usecases.ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketView, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

type TicketHandler struct {
	createUC CreateTicketExecutor
	getUC    GetTicketExecutor
	listUC   ListTicketsExecutor
	searchUC SearchTicketsExecutor
	updateUC UpdateTicketExecutor
	deleteUC DeleteTicketExecutor
	logger   logger.Interface
}

func NewTicketHandler(
	createUC CreateTicketExecutor,
	getUC GetTicketExecutor,
	listUC ListTicketsExecutor,
	searchUC SearchTicketsExecutor,
	updateUC UpdateTicketExecutor,
	deleteUC DeleteTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		searchUC: searchUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type createTicketRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	AssigneeID  *uint    `json:"assignedTo"`
	Tags        []string `json:"tags"`
}

type updateTicketRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Priority    *string  `json:"priority"`
	AssigneeID  *uint    `json:"assignedTo"`
	Tags        []string `json:"tags"`
}

// CreateTicket handles POST /tickets.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "title and description are required")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:       actor,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		Tags:        req.Tags,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetTicket handles GET /tickets/:id.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}

// ListTickets handles GET /tickets.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Query:      c.Query("q"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		AssigneeID: parseOptionalUint(c.Query("assignedTo")),
		Tags:       parseTags(c.Query("tags")),
		Pagination: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, utils.NewPagedResponse(result.Tickets, result.Total, p))
}

// SearchTickets handles GET /tickets/search.
func (h *TicketHandler) SearchTickets(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchTicketsQuery{
		Query:      c.Query("q"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		AssigneeID: parseOptionalUint(c.Query("assignedTo")),
		Tags:       parseTags(c.Query("tags")),
		Pagination: p,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, utils.NewPagedResponse(result.Tickets, result.Total, p))
}

// UpdateTicket handles PUT /tickets/:id.
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:    actor,
		TicketID: id,
		Patch: ticket.Patch{
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			Priority:    req.Priority,
			AssigneeID:  req.AssigneeID,
			Tags:        req.Tags,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result)
}

// DeleteTicket handles DELETE /tickets/:id.
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Actor:    actor,
		TicketID: id,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, "Ticket deleted successfully")
}

func parseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid id parameter")
	}
	return uint(id), nil
}

func parseOptionalUint(raw string) *uint {
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	v := uint(n)
	return &v
}

// parseTags splits a comma-separated tags parameter, dropping empties.
func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
