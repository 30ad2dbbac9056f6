package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

type adminRepository struct {
	storage *Storage
}

func (r *adminRepository) Create(ctx context.Context, email, passwordHash string, confirmed bool) (*model.Admin, error) {
	const query = `INSERT INTO admins (email, password_hash, confirmed) VALUES ($1, $2, $3) RETURNING id, created_at`
	a := model.Admin{Email: email, PasswordHash: passwordHash, Confirmed: confirmed}
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, confirmed).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	const query = `SELECT id, email, password_hash, confirmed, created_at FROM admins WHERE email=$1`
	return r.get(ctx, query, email)
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	const query = `SELECT id, email, password_hash, confirmed, created_at FROM admins WHERE id=$1`
	return r.get(ctx, query, id)
}

func (r *adminRepository) get(ctx context.Context, query string, arg any) (*model.Admin, error) {
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Confirmed, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
