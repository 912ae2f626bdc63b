package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront/internal/domain"
)

const ticketColumns = `id, user_id, subject, message, priority, status, category, created_at, updated_at`

type supportTicketRepository struct {
	pool *pgxpool.Pool
}

// NewSupportTicketRepository instantiates repository.
func NewSupportTicketRepository(pool *pgxpool.Pool) SupportTicketRepository {
	return &supportTicketRepository{pool: pool}
}

func (r *supportTicketRepository) List(ctx context.Context) ([]domain.SupportTicket, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ticketColumns+` FROM support_tickets ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *supportTicketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SupportTicket, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ticketColumns+` FROM support_tickets WHERE user_id=$1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *supportTicketRepository) GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	ticket, err := scanTicket(r.pool.QueryRow(ctx,
		`SELECT `+ticketColumns+` FROM support_tickets WHERE id=$1`, id))
	return ticket, translateError(err)
}

func (r *supportTicketRepository) Create(ctx context.Context, ticket *domain.SupportTicket) error {
	const query = `
        INSERT INTO support_tickets (user_id, subject, message, priority, status, category)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		ticket.UserID,
		ticket.Subject,
		ticket.Message,
		ticket.Priority,
		ticket.Status,
		ticket.Category,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
	return translateError(err)
}

func (r *supportTicketRepository) Update(ctx context.Context, id int64, upd TicketUpdate) (*domain.SupportTicket, error) {
	var b setBuilder
	if upd.Subject != nil {
		b.add("subject", *upd.Subject)
	}
	if upd.Message != nil {
		b.add("message", *upd.Message)
	}
	if upd.Priority != nil {
		b.add("priority", *upd.Priority)
	}
	if upd.Status != nil {
		b.add("status", *upd.Status)
	}
	if upd.Category != nil {
		b.add("category", *upd.Category)
	}
	b.clauses = append(b.clauses, "updated_at=NOW()")

	query := `UPDATE support_tickets SET ` + strings.Join(b.clauses, ", ") +
		` WHERE id=` + b.placeholder(id) + ` RETURNING ` + ticketColumns
	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, b.args...))
	return ticket, translateError(err)
}

func (r *supportTicketRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.pool, "support_tickets", id)
}

func scanTicket(row pgx.Row) (*domain.SupportTicket, error) {
	var ticket domain.SupportTicket
	if err := row.Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.Subject,
		&ticket.Message,
		&ticket.Priority,
		&ticket.Status,
		&ticket.Category,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.SupportTicket, error) {
	var result []domain.SupportTicket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}
