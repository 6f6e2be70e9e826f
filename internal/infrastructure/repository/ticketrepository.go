package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// fulltextMatch is the relevance expression shared by the search condition
// and the ordering clause. The index behind it is created by migration.
const fulltextMatch = "MATCH(title, description, tags) AGAINST(? IN NATURAL LANGUAGE MODE)"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Save(ctx context.Context, entity *ticket.Ticket) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "title", model.Title, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	return nil
}

// Update persists the full ticket row. Columns are selected explicitly so a
// cleared assignee writes NULL instead of being skipped as a zero value.
func (r *TicketRepository) Update(ctx context.Context, entity *ticket.Ticket) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "status", "priority", "assignee_id", "tags", "updated_at").
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"priority":    model.Priority,
			"assignee_id": model.AssigneeID,
			"tags":        model.Tags,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Ticket not found")
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Ticket not found")
		}
		r.logger.Errorw("failed to get ticket by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns one page of tickets matching the filter plus the total count.
// A full-text query orders results by relevance; otherwise newest first.
func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})
	query = applyTicketFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	if filter.HasQuery() {
		query = query.Order(gorm.Expr(fulltextMatch+" DESC", filter.Query))
	} else {
		query = query.Order("created_at DESC")
	}

	offset := (filter.Page - 1) * filter.Limit
	var ticketModels []*models.TicketModel
	if err := query.Offset(offset).Limit(filter.Limit).Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			r.logger.Warnw("failed to map ticket model, skipping", "id", model.ID, "error", err)
			continue
		}
		tickets = append(tickets, entity)
	}

	return tickets, total, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete ticket", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Ticket not found")
	}

	return nil
}

func applyTicketFilter(query *gorm.DB, filter ticket.Filter) *gorm.DB {
	if filter.HasQuery() {
		query = query.Where(fulltextMatch, filter.Query)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if len(filter.Tags) > 0 {
		// Tags are stored as a JSON array; match tickets whose tag set
		// intersects the requested set.
		tagsJSON, _ := json.Marshal(filter.Tags)
		query = query.Where("JSON_OVERLAPS(CAST(tags AS JSON), CAST(? AS JSON))", string(tagsJSON))
	}
	return query
}
