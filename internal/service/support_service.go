package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/repository"
	"github.com/spec-kit/storefront/internal/validation"
)

// SupportService manages customer support tickets.
type SupportService struct {
	tickets repository.SupportTicketRepository
	events  publisher
	now     func() time.Time
}

// TicketInput is the new ticket form.
type TicketInput struct {
	UserID   int64
	Subject  string
	Message  string
	Priority string
	Category string
}

// TicketChanges is the ticket edit form; nil fields are left untouched.
type TicketChanges struct {
	Subject  *string
	Message  *string
	Priority *string
	Status   *string
	Category *string
}

// GetSupportTickets lists one user's tickets, or all of them when userID is
// nil.
func (s *SupportService) GetSupportTickets(ctx context.Context, userID *int64) ([]domain.SupportTicket, error) {
	var (
		tickets []domain.SupportTicket
		err     error
	)
	if userID != nil {
		tickets, err = s.tickets.ListByUser(ctx, *userID)
	} else {
		tickets, err = s.tickets.List(ctx)
	}
	if err != nil {
		return nil, storeError("ticket", 0, err)
	}
	return tickets, nil
}

// CreateSupportTicket opens a ticket; priority defaults to medium.
func (s *SupportService) CreateSupportTicket(ctx context.Context, input TicketInput) (*domain.SupportTicket, error) {
	fields := map[string]any{}
	subject := validation.SanitizeInput(input.Subject)
	if subject == "" {
		fields["subject"] = "required"
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		fields["message"] = "required"
	}
	priority := domain.TicketPriorityMedium
	if strings.TrimSpace(input.Priority) != "" {
		parsed, ok := domain.ParseTicketPriority(input.Priority)
		if !ok {
			fields["priority"] = "invalid"
		}
		priority = parsed
	}
	if len(fields) > 0 {
		return nil, invalidFields("invalid ticket", fields)
	}

	ticket := &domain.SupportTicket{
		UserID:   input.UserID,
		Subject:  subject,
		Message:  message,
		Priority: priority,
		Status:   domain.TicketStatusOpen,
		Category: validation.SanitizeInput(input.Category),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, storeError("ticket", 0, err)
	}

	s.events.publish(ctx, events.New(events.EventTicketCreated, "ticket", ticket.ID, ticket.UserID, s.now(),
		events.TicketCreatedPayload{Subject: ticket.Subject, Priority: ticket.Priority, Category: ticket.Category}))
	return ticket, nil
}

// UpdateTicket applies the set fields. Any status may follow any other.
func (s *SupportService) UpdateTicket(ctx context.Context, id int64, changes TicketChanges) (*domain.SupportTicket, error) {
	var upd repository.TicketUpdate
	fields := map[string]any{}

	if changes.Subject != nil {
		subject := validation.SanitizeInput(*changes.Subject)
		if subject == "" {
			fields["subject"] = "required"
		}
		upd.Subject = &subject
	}
	if changes.Message != nil {
		message := strings.TrimSpace(*changes.Message)
		if message == "" {
			fields["message"] = "required"
		}
		upd.Message = &message
	}
	if changes.Priority != nil {
		priority, ok := domain.ParseTicketPriority(*changes.Priority)
		if !ok {
			fields["priority"] = "invalid"
		}
		upd.Priority = &priority
	}
	if changes.Status != nil {
		status, ok := domain.ParseTicketStatus(*changes.Status)
		if !ok {
			fields["status"] = "invalid"
		}
		upd.Status = &status
	}
	if changes.Category != nil {
		category := validation.SanitizeInput(*changes.Category)
		upd.Category = &category
	}
	if len(fields) > 0 {
		return nil, invalidFields("invalid ticket", fields)
	}

	current, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("ticket", id, err)
	}
	updated, err := s.tickets.Update(ctx, id, upd)
	if err != nil {
		return nil, storeError("ticket", id, err)
	}

	s.events.publish(ctx, events.New(events.EventTicketUpdated, "ticket", id, updated.UserID, s.now(),
		events.TicketUpdatedPayload{
			OldStatus:   current.Status,
			NewStatus:   updated.Status,
			OldPriority: current.Priority,
			NewPriority: updated.Priority,
		}))
	return updated, nil
}

// DeleteTicket removes a ticket.
func (s *SupportService) DeleteTicket(ctx context.Context, id int64) error {
	removed, err := s.tickets.Delete(ctx, id)
	if err != nil {
		return storeError("ticket", id, err)
	}
	if !removed {
		return missing("ticket", id)
	}
	return nil
}
