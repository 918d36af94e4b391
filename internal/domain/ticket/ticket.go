package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

const titleSnippetLength = 40

// Ticket is the support-ticket aggregate. Category and priority are opaque
// classifier outputs; status transitions are restricted to administrators at
// the application layer.
type Ticket struct {
	id           uint
	title        string
	description  string
	category     string
	priority     string
	status       vo.TicketStatus
	adminComment *string
	creatorID    uint
	createdAt    time.Time
}

// NewTicket creates a ticket from the submitted text and classifier outputs.
// The title is derived: "<category>: <first 40 characters of the text>".
func NewTicket(text, category, priority string, creatorID uint) (*Ticket, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("ticket text is required")
	}
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if priority == "" {
		return nil, fmt.Errorf("priority is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	// Counted in runes so a multibyte character is never split.
	snippet := text
	if runes := []rune(snippet); len(runes) > titleSnippetLength {
		snippet = string(runes[:titleSnippetLength])
	}

	return &Ticket{
		title:       fmt.Sprintf("%s: %s", category, snippet),
		description: text,
		category:    category,
		priority:    priority,
		status:      vo.StatusOpen,
		creatorID:   creatorID,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructTicket rebuilds a ticket aggregate from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	category string,
	priority string,
	status vo.TicketStatus,
	adminComment *string,
	creatorID uint,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:           id,
		title:        title,
		description:  description,
		category:     category,
		priority:     priority,
		status:       status,
		adminComment: adminComment,
		creatorID:    creatorID,
		createdAt:    createdAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Priority() string {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) AdminComment() *string {
	return t.adminComment
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

// SetID sets the ticket ID (only for persistence layer use)
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateStatus moves the ticket to a new triage state and records the
// administrator's comment. A blank comment clears any existing one.
func (t *Ticket) UpdateStatus(status vo.TicketStatus, comment string) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}

	t.status = status

	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		t.adminComment = nil
	} else {
		t.adminComment = &trimmed
	}

	return nil
}
