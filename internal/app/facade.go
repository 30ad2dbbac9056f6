package app

import (
	"context"
	"time"

	"github.com/polkiloo/storefront/internal/domain/metrics"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/notify"
	"github.com/polkiloo/storefront/internal/usecase"
)

// HealthChecker reports backing store availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade joins the use cases behind the HTTP surface.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	store    *usecase.StoreUseCase
	catalog  *usecase.CatalogUseCase
	orders   *usecase.OrderUseCase
	checkout *usecase.CheckoutUseCase
	assist   *usecase.AssistUseCase
	alerts   *notify.Hub
	health   HealthChecker
	now      func() time.Time
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	store *usecase.StoreUseCase,
	catalog *usecase.CatalogUseCase,
	orders *usecase.OrderUseCase,
	checkout *usecase.CheckoutUseCase,
	assist *usecase.AssistUseCase,
	alerts *notify.Hub,
	health HealthChecker,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:     auth,
		store:    store,
		catalog:  catalog,
		orders:   orders,
		checkout: checkout,
		assist:   assist,
		alerts:   alerts,
		health:   health,
		now:      time.Now,
	}
}

func (f *StorefrontFacade) Login(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Login(ctx, email, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) SessionTTL() time.Duration {
	return f.auth.SessionTTL()
}

func (f *StorefrontFacade) AssistEnabled() bool {
	return f.assist.Enabled()
}

func (f *StorefrontFacade) Store() model.StoreConfig {
	return f.store.Current()
}

func (f *StorefrontFacade) SetStoreOpen(ctx context.Context, open bool) (model.StoreConfig, error) {
	return f.store.SetOpen(ctx, open)
}

func (f *StorefrontFacade) Categories() []model.Category {
	return f.catalog.Categories()
}

func (f *StorefrontFacade) Products(category, query string) []model.Product {
	return f.catalog.Filter(category, query)
}

func (f *StorefrontFacade) AdminProducts() []model.Product {
	return f.catalog.List()
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	return f.catalog.Create(ctx, in)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	return f.catalog.Update(ctx, id, in)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *StorefrontFacade) SuggestProduct(ctx context.Context, name string) (*model.ProductSuggestion, bool) {
	return f.assist.Suggest(ctx, name)
}

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error) {
	return f.checkout.Checkout(ctx, req)
}

func (f *StorefrontFacade) Orders() []model.Order {
	return f.orders.List()
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, *model.Notification, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *StorefrontFacade) NotifyOrder(ctx context.Context, id string) (*model.Notification, error) {
	return f.orders.Notify(ctx, id)
}

func (f *StorefrontFacade) ConfirmDelivery(ctx context.Context, token string) (model.Confirmation, error) {
	return f.orders.ConfirmDelivery(ctx, token)
}

// Metrics recomputes the sales report and dashboard summary from current state.
func (f *StorefrontFacade) Metrics() (metrics.Report, metrics.Summary) {
	orders := f.orders.List()
	return metrics.Compute(orders, f.now()), metrics.Summarize(f.catalog.List(), orders)
}

func (f *StorefrontFacade) SubscribeAlerts() (<-chan model.OrderAlert, func()) {
	return f.alerts.Subscribe()
}

func (f *StorefrontFacade) AlertsEnabled() bool {
	return f.alerts.Enabled()
}

func (f *StorefrontFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
