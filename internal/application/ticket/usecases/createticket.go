package usecases

import (
	"context"
	"fmt"
	"strings"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/classifier"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// Classifier predicts the category and priority of pre-normalized ticket text.
type Classifier interface {
	Classify(normalizedText string) (category, priority string)
}

type CreateTicketCommand struct {
	Text   string
	UserID uint
}

// CreateTicketUseCase runs the submitted text through the classifier and
// persists the resulting ticket. Classifier outputs are opaque labels; they
// are stored as-is and never interpreted.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	classifier Classifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	classifier Classifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		classifier: classifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error) {
	if strings.TrimSpace(cmd.Text) == "" {
		return nil, apperrors.NewValidationError("ticket text is required")
	}

	normalized := classifier.NormalizeText(cmd.Text)
	category, priority := uc.classifier.Classify(normalized)

	newTicket, err := ticket.NewTicket(cmd.Text, category, priority, cmd.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"user_id", cmd.UserID,
		"category", category,
		"priority", priority,
	)

	return newTicket, nil
}
