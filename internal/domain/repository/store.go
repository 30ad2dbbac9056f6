package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// StoreConfigRepository manages the singleton store configuration row.
type StoreConfigRepository interface {
	Get(ctx context.Context) (*model.StoreConfig, error)
	Save(ctx context.Context, cfg model.StoreConfig) error
	SetOpen(ctx context.Context, open bool) error
}
