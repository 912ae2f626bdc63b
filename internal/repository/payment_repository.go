package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront/internal/domain"
)

const paymentColumns = `id, reference, order_id, user_id, service_id, amount, status, card_last4, failure_reason, created_at`

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed payment ledger.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *payment)
	}
	return result, rows.Err()
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (reference, order_id, user_id, service_id, amount, status, card_last4, failure_reason)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		payment.Reference,
		payment.OrderID,
		payment.UserID,
		payment.ServiceID,
		payment.Amount,
		payment.Status,
		payment.CardLast4,
		payment.FailureReason,
	).Scan(&payment.ID, &payment.CreatedAt)
	return translateError(err)
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	if err := row.Scan(
		&payment.ID,
		&payment.Reference,
		&payment.OrderID,
		&payment.UserID,
		&payment.ServiceID,
		&payment.Amount,
		&payment.Status,
		&payment.CardLast4,
		&payment.FailureReason,
		&payment.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &payment, nil
}
