package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

// mockTicketRepo implements ticket.Repository with overridable behaviors.
type mockTicketRepo struct {
	getByIDFn       func(ctx context.Context, id uint) (*ticket.Ticket, error)
	listAllFn       func(ctx context.Context) ([]*ticket.Ticket, error)
	listByCreatorFn func(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error)
	saveFn          func(ctx context.Context, t *ticket.Ticket) error
	updateFn        func(ctx context.Context, t *ticket.Ticket) error
	deleteFn        func(ctx context.Context, id uint) error

	saved   []*ticket.Ticket
	updated []*ticket.Ticket
	deleted []uint
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	m.saved = append(m.saved, t)
	if m.saveFn != nil {
		return m.saveFn(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	m.updated = append(m.updated, t)
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepo) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepo) ListByCreator(ctx context.Context, creatorID uint) ([]*ticket.Ticket, error) {
	if m.listByCreatorFn != nil {
		return m.listByCreatorFn(ctx, creatorID)
	}
	return nil, nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockClassifier returns fixed labels and records its input.
type mockClassifier struct {
	category string
	priority string
	inputs   []string
}

func (m *mockClassifier) Classify(normalizedText string) (string, string) {
	m.inputs = append(m.inputs, normalizedText)
	return m.category, m.priority
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
