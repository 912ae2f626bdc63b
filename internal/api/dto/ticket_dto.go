package dto

import "time"

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject  string `json:"subject" validate:"required,max=255"`
	Message  string `json:"message" validate:"required"`
	Priority string `json:"priority" validate:"omitempty,oneofci=low medium high"`
	Category string `json:"category"`
}

// UpdateTicketRequest carries only the fields to change.
type UpdateTicketRequest struct {
	Subject  *string `json:"subject"`
	Message  *string `json:"message"`
	Priority *string `json:"priority" validate:"omitempty,oneofci=low medium high"`
	Status   *string `json:"status"`
	Category *string `json:"category"`
}

// TicketResponse is a support ticket.
type TicketResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
