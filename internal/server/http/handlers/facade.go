package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/storefront/internal/domain/metrics"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// AuthFacade describes staff authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
	SessionTTL() time.Duration
	AssistEnabled() bool
}

// StoreFacade exposes the store configuration.
type StoreFacade interface {
	Store() model.StoreConfig
	SetStoreOpen(ctx context.Context, open bool) (model.StoreConfig, error)
}

// CatalogFacade exposes catalog browsing and administration.
type CatalogFacade interface {
	Categories() []model.Category
	Products(category, query string) []model.Product
	AdminProducts() []model.Product
	CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, in model.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	SuggestProduct(ctx context.Context, name string) (*model.ProductSuggestion, bool)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error)
	Orders() []model.Order
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, *model.Notification, error)
	NotifyOrder(ctx context.Context, id string) (*model.Notification, error)
	ConfirmDelivery(ctx context.Context, token string) (model.Confirmation, error)
	Metrics() (metrics.Report, metrics.Summary)
}

// AlertFacade streams new-order alerts to staff.
type AlertFacade interface {
	SubscribeAlerts() (<-chan model.OrderAlert, func())
	AlertsEnabled() bool
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	StoreFacade
	CatalogFacade
	OrderFacade
	AlertFacade
	HealthFacade
}
