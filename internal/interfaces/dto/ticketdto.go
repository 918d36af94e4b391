package dto

import (
	"time"

	"ticketdesk/internal/domain/ticket"
)

// TicketResponse is the public ticket representation.
type TicketResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	AdminComment *string   `json:"admin_comment"`
	UserID       uint      `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewTicketResponse(t *ticket.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:           t.ID(),
		Title:        t.Title(),
		Description:  t.Description(),
		Category:     t.Category(),
		Priority:     t.Priority(),
		Status:       t.Status().String(),
		AdminComment: t.AdminComment(),
		UserID:       t.CreatorID(),
		CreatedAt:    t.CreatedAt(),
	}
}

func NewTicketResponses(tickets []*ticket.Ticket) []*TicketResponse {
	responses := make([]*TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, NewTicketResponse(t))
	}
	return responses
}
