package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewMessageRepository(db *gorm.DB, logger logger.Interface) ticket.MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *MessageRepository) Save(ctx context.Context, entity *ticket.Message) error {
	model := r.mapper.MessageToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create message", "ticket_id", model.TicketID, "error", err)
		return fmt.Errorf("failed to create message: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set message ID: %w", err)
	}

	return nil
}

func (r *MessageRepository) Update(ctx context.Context, entity *ticket.Message) error {
	model := r.mapper.MessageToModel(entity)

	result := r.db.WithContext(ctx).
		Model(&models.MessageModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"content":    model.Content,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update message", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Message not found")
	}

	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id uint) (*ticket.Message, error) {
	var model models.MessageModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Message not found")
		}
		r.logger.Errorw("failed to get message by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return r.mapper.MessageToDomain(&model)
}

// ListByTicketID returns one page of the ticket's messages, newest first.
func (r *MessageRepository) ListByTicketID(ctx context.Context, ticketID uint, page, limit int) ([]*ticket.Message, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.MessageModel{}).Where("ticket_id = ?", ticketID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count messages", "ticket_id", ticketID, "error", err)
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	offset := (page - 1) * limit
	var messageModels []*models.MessageModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&messageModels).Error; err != nil {
		r.logger.Errorw("failed to list messages", "ticket_id", ticketID, "error", err)
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*ticket.Message, 0, len(messageModels))
	for _, model := range messageModels {
		entity, err := r.mapper.MessageToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map message model, skipping", "id", model.ID, "error", err)
			continue
		}
		messages = append(messages, entity)
	}

	return messages, total, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MessageModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete message", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Message not found")
	}

	return nil
}

// DeleteByTicketID removes every message on the ticket. Deleting zero rows is
// fine; a ticket without messages still cascades cleanly.
func (r *MessageRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Delete(&models.MessageModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete messages by ticket", "ticket_id", ticketID, "error", err)
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	return nil
}
