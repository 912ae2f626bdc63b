package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront/internal/domain"
)

const serviceColumns = `id, name, description, category, price, billing_cycle, features, status, created_at, updated_at`

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository instantiates the catalogue repository.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

func (r *serviceRepository) List(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *svc)
	}
	return result, rows.Err()
}

func (r *serviceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := scanService(r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id=$1`, id))
	return svc, translateError(err)
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	const query = `
        INSERT INTO services (name, description, category, price, billing_cycle, features, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	if svc.Features == nil {
		svc.Features = []string{}
	}
	err := r.pool.QueryRow(ctx, query,
		svc.Name,
		svc.Description,
		svc.Category,
		svc.Price,
		svc.BillingCycle,
		svc.Features,
		svc.Status,
	).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
	return translateError(err)
}

func (r *serviceRepository) Update(ctx context.Context, id int64, upd ServiceUpdate) (*domain.Service, error) {
	var b setBuilder
	if upd.Name != nil {
		b.add("name", *upd.Name)
	}
	if upd.Description != nil {
		b.add("description", *upd.Description)
	}
	if upd.Category != nil {
		b.add("category", *upd.Category)
	}
	if upd.Price != nil {
		b.add("price", *upd.Price)
	}
	if upd.BillingCycle != nil {
		b.add("billing_cycle", *upd.BillingCycle)
	}
	if upd.Features != nil {
		features := *upd.Features
		if features == nil {
			features = []string{}
		}
		b.add("features", features)
	}
	if upd.Status != nil {
		b.add("status", *upd.Status)
	}
	b.clauses = append(b.clauses, "updated_at=NOW()")

	query := `UPDATE services SET ` + strings.Join(b.clauses, ", ") +
		` WHERE id=` + b.placeholder(id) + ` RETURNING ` + serviceColumns
	svc, err := scanService(r.pool.QueryRow(ctx, query, b.args...))
	return svc, translateError(err)
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.pool, "services", id)
}

func scanService(row pgx.Row) (*domain.Service, error) {
	var svc domain.Service
	if err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.Category,
		&svc.Price,
		&svc.BillingCycle,
		&svc.Features,
		&svc.Status,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &svc, nil
}
