package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// AdminRepository describes persistence operations for staff accounts.
type AdminRepository interface {
	Create(ctx context.Context, email, passwordHash string, confirmed bool) (*model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetByID(ctx context.Context, id int64) (*model.Admin, error)
}
