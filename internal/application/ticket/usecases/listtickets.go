package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	UserID uint
	Role   authorization.UserRole
}

// ListTicketsUseCase returns tickets scoped by role: administrators see every
// ticket, regular users only their own. Both views are newest first.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*ticket.Ticket, error) {
	var (
		tickets []*ticket.Ticket
		err     error
	)

	if query.Role.IsAdmin() {
		tickets, err = uc.ticketRepo.ListAll(ctx)
	} else {
		tickets, err = uc.ticketRepo.ListByCreator(ctx, query.UserID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return tickets, nil
}
