package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByConfirmationToken(ctx context.Context, token string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	UpdateStatusByToken(ctx context.Context, token string, status model.OrderStatus) error
}

// ChangeSource streams order row changes until ctx is done or the subscription fails.
// Handle is called serially, one change at a time.
type ChangeSource interface {
	Listen(ctx context.Context, handle func(model.OrderChange)) error
}
