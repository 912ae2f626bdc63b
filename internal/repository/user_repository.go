package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront/internal/domain"
)

const userColumns = `id, name, email, password_hash, role, language, phone, address, city, state,
               zip_code, country, status, created_at, updated_at`

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *user)
	}
	return result, rows.Err()
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
	return user, translateError(err)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE LOWER(email)=LOWER($1)`, strings.TrimSpace(email)))
	return user, translateError(err)
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, password_hash, role, language, phone, address, city, state, zip_code, country, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Language,
		user.Phone,
		user.Address,
		user.City,
		user.State,
		user.ZipCode,
		user.Country,
		user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return translateError(err)
}

func (r *userRepository) Update(ctx context.Context, id int64, upd UserUpdate) (*domain.User, error) {
	var b setBuilder
	if upd.Name != nil {
		b.add("name", *upd.Name)
	}
	if upd.Email != nil {
		b.add("email", *upd.Email)
	}
	if upd.PasswordHash != nil {
		b.add("password_hash", *upd.PasswordHash)
	}
	if upd.Role != nil {
		b.add("role", *upd.Role)
	}
	if upd.Language != nil {
		b.add("language", *upd.Language)
	}
	if upd.Phone != nil {
		b.add("phone", *upd.Phone)
	}
	if upd.Address != nil {
		b.add("address", *upd.Address)
	}
	if upd.City != nil {
		b.add("city", *upd.City)
	}
	if upd.State != nil {
		b.add("state", *upd.State)
	}
	if upd.ZipCode != nil {
		b.add("zip_code", *upd.ZipCode)
	}
	if upd.Country != nil {
		b.add("country", *upd.Country)
	}
	if upd.Status != nil {
		b.add("status", *upd.Status)
	}
	b.clauses = append(b.clauses, "updated_at=NOW()")

	query := `UPDATE users SET ` + strings.Join(b.clauses, ", ") +
		` WHERE id=` + b.placeholder(id) + ` RETURNING ` + userColumns
	user, err := scanUser(r.pool.QueryRow(ctx, query, b.args...))
	return user, translateError(err)
}

func (r *userRepository) ToggleStatus(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        UPDATE users
        SET status = CASE WHEN status = 'suspended' THEN 'active' ELSE 'suspended' END,
            updated_at = NOW()
        WHERE id=$1
        RETURNING ` + userColumns

	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	return user, translateError(err)
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.pool, "users", id)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Language,
		&user.Phone,
		&user.Address,
		&user.City,
		&user.State,
		&user.ZipCode,
		&user.Country,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
