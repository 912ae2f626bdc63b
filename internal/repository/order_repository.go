package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront/internal/domain"
)

const orderColumns = `id, user_id, service_id, status, amount, billing_cycle, expires_at, created_at, updated_at`

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id=$1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	return order, translateError(err)
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (user_id, service_id, status, amount, billing_cycle, expires_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		order.UserID,
		order.ServiceID,
		order.Status,
		order.Amount,
		order.BillingCycle,
		order.ExpiresAt,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	return translateError(err)
}

func (r *orderRepository) Update(ctx context.Context, id int64, upd OrderUpdate) (*domain.Order, error) {
	var b setBuilder
	if upd.Status != nil {
		b.add("status", *upd.Status)
	}
	if upd.Amount != nil {
		b.add("amount", *upd.Amount)
	}
	if upd.ExpiresAt != nil {
		b.add("expires_at", *upd.ExpiresAt)
	}
	b.clauses = append(b.clauses, "updated_at=NOW()")

	query := `UPDATE orders SET ` + strings.Join(b.clauses, ", ") +
		` WHERE id=` + b.placeholder(id) + ` RETURNING ` + orderColumns
	order, err := scanOrder(r.pool.QueryRow(ctx, query, b.args...))
	return order, translateError(err)
}

func (r *orderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.pool, "orders", id)
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.ServiceID,
		&order.Status,
		&order.Amount,
		&order.BillingCycle,
		&order.ExpiresAt,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, rows.Err()
}
