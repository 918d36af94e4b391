package valueobjects

import (
	"fmt"
	"strings"
)

// TicketStatus is the triage state of a ticket. Stored values use the
// canonical display form.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In Progress"
	StatusResolved   TicketStatus = "Resolved"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
}

// canonicalStatuses maps normalized input to the canonical stored form.
var canonicalStatuses = map[string]TicketStatus{
	"open":        StatusOpen,
	"in progress": StatusInProgress,
	"resolved":    StatusResolved,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// ParseTicketStatus resolves caller input to a canonical status. Input is
// matched case-insensitively after trimming surrounding whitespace, so
// "resolved", " RESOLVED " and "Resolved" all yield StatusResolved.
func ParseTicketStatus(s string) (TicketStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	status, ok := canonicalStatuses[normalized]
	if !ok {
		return "", fmt.Errorf("invalid status value: %s", s)
	}
	return status, nil
}
