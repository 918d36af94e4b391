package ticket

import "context"

// Repository is the persistence port for tickets. List methods order by
// creation time descending (newest first).
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	ListAll(ctx context.Context) ([]*Ticket, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]*Ticket, error)
	Delete(ctx context.Context, id uint) error
}
