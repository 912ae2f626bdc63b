package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// NewPostgresRepositories returns the pgx-backed implementations sharing one pool.
func NewPostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    NewUserRepository(pool),
		Services: NewServiceRepository(pool),
		Orders:   NewOrderRepository(pool),
		Tickets:  NewSupportTicketRepository(pool),
		Payments: NewPaymentRepository(pool),
		Health:   &poolHealth{pool: pool},
	}
}

type poolHealth struct {
	pool *pgxpool.Pool
}

func (h *poolHealth) Backend() string { return "postgres" }

func (h *poolHealth) Ping(ctx context.Context) error {
	if h.pool == nil {
		return errors.New("postgres pool not configured")
	}
	return h.pool.Ping(ctx)
}

// translateError maps driver errors onto the repository sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
	}
	return err
}

// setBuilder accumulates "column=$n" fragments for partial updates.
type setBuilder struct {
	clauses []string
	args    []any
}

func (b *setBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s=$%d", column, len(b.args)))
}

func (b *setBuilder) placeholder(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

func deleteByID(ctx context.Context, pool *pgxpool.Pool, table string, id int64) (bool, error) {
	cmd, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id=$1", table), id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
