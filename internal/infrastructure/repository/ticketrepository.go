package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// TicketRepository implements the ticket repository interface with DDD patterns
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

// NewTicketRepository creates a new DDD ticket repository
func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

// Save persists a new ticket
func (r *TicketRepository) Save(ctx context.Context, ticketEntity *ticket.Ticket) error {
	model, err := r.mapper.ToModel(ticketEntity)
	if err != nil {
		r.logger.Errorw("failed to map ticket entity to model", "error", err)
		return fmt.Errorf("failed to map ticket entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket in database", "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := ticketEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set ticket ID", "error", err)
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	r.logger.Infow("ticket created successfully", "id", model.ID, "user_id", model.UserID)
	return nil
}

// Update persists changes to an existing ticket
func (r *TicketRepository) Update(ctx context.Context, ticketEntity *ticket.Ticket) error {
	model, err := r.mapper.ToModel(ticketEntity)
	if err != nil {
		r.logger.Errorw("failed to map ticket entity to model", "error", err)
		return fmt.Errorf("failed to map ticket entity: %w", err)
	}

	// Save skips NULL assignment for nil pointers, so clear admin_comment
	// explicitly through Updates with a column map.
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":        model.Status,
			"admin_comment": model.AdminComment,
		}).Error; err != nil {
		r.logger.Errorw("failed to update ticket in database", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	return nil
}

// GetByID retrieves a ticket by ID, returning (nil, nil) when absent
func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map ticket model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map ticket: %w", err)
	}

	return entity, nil
}

// ListAll returns every ticket, newest first
func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToEntities(ticketModels)
}

// ListByCreator returns the tickets created by one user, newest first
func (r *TicketRepository) ListByCreator(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", creatorID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list tickets by creator", "user_id", creatorID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToEntities(ticketModels)
}

// Delete removes a ticket by ID
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete ticket", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Ticket not found")
	}

	r.logger.Infow("ticket deleted", "id", id)
	return nil
}
