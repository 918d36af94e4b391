package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	TicketID uint
	Status   string
	Comment  string
}

// UpdateTicketStatusUseCase applies an admin triage decision: a new status
// and an optional comment. Role enforcement happens at the transport layer.
type UpdateTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*ticket.Ticket, error) {
	status, err := vo.ParseTicketStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid status value")
	}

	existingTicket, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if existingTicket == nil {
		return nil, apperrors.NewNotFoundError("Ticket not found")
	}

	if err := existingTicket.UpdateStatus(status, cmd.Comment); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existingTicket); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket status updated", "ticket_id", cmd.TicketID, "status", status.String())

	return existingTicket, nil
}
