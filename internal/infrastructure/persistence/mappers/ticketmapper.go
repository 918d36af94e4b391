package mappers

import (
	"fmt"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between domain entities and persistence models
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type ticketMapper struct{}

// NewTicketMapper creates a new ticket mapper
func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.TicketStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status in store: %s", model.Status)
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.Category,
		model.Priority,
		status,
		model.AdminComment,
		model.UserID,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity: %w", err)
	}

	return entity, nil
}

func (m *ticketMapper) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TicketModel{
		ID:           entity.ID(),
		Title:        entity.Title(),
		Description:  entity.Description(),
		Category:     entity.Category(),
		Priority:     entity.Priority(),
		Status:       entity.Status().String(),
		AdminComment: entity.AdminComment(),
		UserID:       entity.CreatorID(),
		CreatedAt:    entity.CreatedAt(),
	}, nil
}

func (m *ticketMapper) ToEntities(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
