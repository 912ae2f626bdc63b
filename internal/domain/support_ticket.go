package domain

import (
	"strings"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// ParseTicketStatus accepts "In Progress", "in-progress" and "in_progress" alike.
func ParseTicketStatus(s string) (TicketStatus, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	st := TicketStatus(normalized)
	return st, st.Valid()
}

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// Valid reports whether p is a known priority.
func (p TicketPriority) Valid() bool {
	return p == TicketPriorityLow || p == TicketPriorityMedium || p == TicketPriorityHigh
}

// ParseTicketPriority accepts any casing of a known priority.
func ParseTicketPriority(s string) (TicketPriority, bool) {
	p := TicketPriority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}

// SupportTicket is a customer request.
type SupportTicket struct {
	ID        int64
	UserID    int64
	Subject   string
	Message   string
	Priority  TicketPriority
	Status    TicketStatus
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
