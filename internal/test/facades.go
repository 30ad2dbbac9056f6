package test

import (
	"context"
	"sync"
	"time"

	"github.com/polkiloo/storefront/internal/domain/metrics"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// StoreFacadeStub provides controllable store configuration.
type StoreFacadeStub struct {
	Config    model.StoreConfig
	SetOpenFn func(context.Context, bool) (model.StoreConfig, error)
}

// Store returns configured store row.
func (s StoreFacadeStub) Store() model.StoreConfig {
	return s.Config
}

// SetStoreOpen delegates to override or echoes the flag.
func (s StoreFacadeStub) SetStoreOpen(ctx context.Context, open bool) (model.StoreConfig, error) {
	if s.SetOpenFn != nil {
		return s.SetOpenFn(ctx, open)
	}
	cfg := s.Config
	cfg.IsOpen = open
	return cfg, nil
}

// CatalogFacadeStub provides controllable catalog behaviour.
type CatalogFacadeStub struct {
	CategoryList []model.Category
	ProductList  []model.Product
	ProductsFn   func(string, string) []model.Product
	CreateFn     func(context.Context, model.ProductInput) (*model.Product, error)
	UpdateFn     func(context.Context, string, model.ProductInput) (*model.Product, error)
	DeleteFn     func(context.Context, string) error
	SuggestFn    func(context.Context, string) (*model.ProductSuggestion, bool)
}

// Categories returns configured categories.
func (s CatalogFacadeStub) Categories() []model.Category {
	return s.CategoryList
}

// Products delegates to override or returns configured list.
func (s CatalogFacadeStub) Products(category, query string) []model.Product {
	if s.ProductsFn != nil {
		return s.ProductsFn(category, query)
	}
	return s.ProductList
}

// AdminProducts returns configured list.
func (s CatalogFacadeStub) AdminProducts() []model.Product {
	return s.ProductList
}

// CreateProduct delegates to override or echoes input.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.Product{ID: "new", Name: in.Name, Category: in.Category, SellPrice: in.SellPrice, Stock: in.Stock}, nil
}

// UpdateProduct delegates to override or echoes input.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, in)
	}
	return &model.Product{ID: id, Name: in.Name, Category: in.Category, SellPrice: in.SellPrice, Stock: in.Stock}, nil
}

// DeleteProduct delegates to override.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// SuggestProduct delegates to override or reports no suggestion.
func (s CatalogFacadeStub) SuggestProduct(ctx context.Context, name string) (*model.ProductSuggestion, bool) {
	if s.SuggestFn != nil {
		return s.SuggestFn(ctx, name)
	}
	return nil, false
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn   func(context.Context, model.CheckoutRequest) (*model.PlacedOrder, error)
	OrderList []model.Order
	UpdateFn  func(context.Context, string, model.OrderStatus) (*model.Order, *model.Notification, error)
	NotifyFn  func(context.Context, string) (*model.Notification, error)
	ConfirmFn func(context.Context, string) (model.Confirmation, error)
	Report    metrics.Report
	Summary   metrics.Summary
}

// PlaceOrder delegates to override or places a fixed order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, req)
	}
	return &model.PlacedOrder{
		Order:       model.Order{ID: "AB12C", CustomerName: req.CustomerName, Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)},
		Summary:     "summary",
		WhatsappURL: "https://wa.me/1?text=summary",
	}, nil
}

// Orders returns configured list.
func (s OrderFacadeStub) Orders() []model.Order {
	return s.OrderList
}

// UpdateOrderStatus delegates to override or echoes the status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, *model.Notification, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil, nil
}

// NotifyOrder delegates to override or returns a fixed message.
func (s OrderFacadeStub) NotifyOrder(ctx context.Context, id string) (*model.Notification, error) {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, id)
	}
	return &model.Notification{OrderID: id, Phone: "1", Text: "hi", URL: "https://api.whatsapp.com/send?phone=1&text=hi"}, nil
}

// ConfirmDelivery delegates to override or succeeds.
func (s OrderFacadeStub) ConfirmDelivery(ctx context.Context, token string) (model.Confirmation, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, token)
	}
	return model.Confirmation{State: model.ConfirmationSuccess, OrderID: token}, nil
}

// Metrics returns configured report.
func (s OrderFacadeStub) Metrics() (metrics.Report, metrics.Summary) {
	return s.Report, s.Summary
}

// AlertFacadeStub streams alerts from a fixed channel.
type AlertFacadeStub struct {
	Disabled bool
	Alerts   chan model.OrderAlert
}

// SubscribeAlerts returns the configured channel.
func (s AlertFacadeStub) SubscribeAlerts() (<-chan model.OrderAlert, func()) {
	if s.Alerts == nil {
		ch := make(chan model.OrderAlert)
		close(ch)
		return ch, func() {}
	}
	return s.Alerts, func() {}
}

// AlertsEnabled reports whether alerts are on.
func (s AlertFacadeStub) AlertsEnabled() bool {
	return !s.Disabled
}

// HealthFacadeStub reports a configured health error.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// AlertRecorder captures published alerts.
type AlertRecorder struct {
	mu     sync.Mutex
	Alerts []model.OrderAlert
}

// Publish records alert.
func (r *AlertRecorder) Publish(alert model.OrderAlert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Alerts = append(r.Alerts, alert)
}

// Count returns the number of recorded alerts.
func (r *AlertRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Alerts)
}

// SuggesterStub returns configured product copy.
type SuggesterStub struct {
	Suggestion *model.ProductSuggestion
	Err        error
	Calls      int
}

// Suggest returns configured result.
func (s *SuggesterStub) Suggest(ctx context.Context, name string) (*model.ProductSuggestion, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	out := *s.Suggestion
	return &out, nil
}
