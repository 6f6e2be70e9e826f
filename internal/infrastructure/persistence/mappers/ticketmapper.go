// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket/Message domain entities
// and their persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	MessageToModel(m *ticket.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*ticket.Message, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}

	tagsJSON, _ := json.Marshal(t.Tags())
	model.Tags = string(tagsJSON)

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var tags []string
	if model.Tags != "" {
		if err := json.Unmarshal([]byte(model.Tags), &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket tags (id=%d): %w", model.ID, err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		model.CreatorID,
		model.AssigneeID,
		tags,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:        msg.ID(),
		Content:   msg.Content(),
		TicketID:  msg.TicketID(),
		AuthorID:  msg.AuthorID(),
		CreatedAt: msg.CreatedAt().UnixMilli(),
		UpdatedAt: msg.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.MessageModel) (*ticket.Message, error) {
	return ticket.ReconstructMessage(
		model.ID,
		model.Content,
		model.TicketID,
		model.AuthorID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
