package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/polkiloo/storefront/internal/config"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/pkg/whatsapp"
)

// AlertPublisher receives staff alerts for new orders.
type AlertPublisher interface {
	Publish(alert model.OrderAlert)
}

// OrderUseCase owns the in-memory order list and its lifecycle.
type OrderUseCase struct {
	orders  repository.OrderRepository
	store   *StoreUseCase
	alerts  AlertPublisher
	baseURL string
	logger  *slog.Logger

	mu   sync.RWMutex
	list []model.Order
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, store *StoreUseCase, alerts AlertPublisher, cfg *config.Config, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:  orders,
		store:   store,
		alerts:  alerts,
		baseURL: cfg.PublicBaseURL,
		logger:  logger,
	}
}

// Load replaces the in-memory list with persisted orders.
func (u *OrderUseCase) Load(ctx context.Context) error {
	list, err := u.orders.List(ctx)
	if err != nil {
		return err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	u.mu.Lock()
	u.list = list
	u.mu.Unlock()
	return nil
}

// List returns all orders, newest first.
func (u *OrderUseCase) List() []model.Order {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]model.Order, len(u.list))
	copy(out, u.list)
	return out
}

// Get returns the in-memory order with id.
func (u *OrderUseCase) Get(id string) (model.Order, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, o := range u.list {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// Place persists order and returns its summary with the store chat link.
func (u *OrderUseCase) Place(ctx context.Context, order model.Order) (*model.PlacedOrder, error) {
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	u.add(order)

	store := u.store.Current()
	summary := whatsapp.OrderSummary(store.StoreName, order)
	return &model.PlacedOrder{
		Order:       order,
		Summary:     summary,
		WhatsappURL: whatsapp.ChatLink(store.WhatsappNumber, summary),
	}, nil
}

// UpdateStatus persists status for order id and patches memory.
// When status is a notification point the composed customer message is returned.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, *model.Notification, error) {
	current, err := u.lookup(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !model.IsLegalTransition(current.Status, status) {
		return nil, nil, fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidStatus, current.Status, status)
	}

	if err := u.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, nil, err
	}
	u.patch(id, func(o *model.Order) { o.Status = status })

	current.Status = status
	note, _ := u.notification(current, status)
	return &current, note, nil
}

// Notify composes the customer message for the order's current status.
func (u *OrderUseCase) Notify(ctx context.Context, id string) (*model.Notification, error) {
	current, err := u.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	note, ok := u.notification(current, current.Status)
	if !ok {
		return nil, fmt.Errorf("%w: no message for %s", domainErrors.ErrInvalidStatus, current.Status)
	}
	return note, nil
}

// ApplyChange merges one change feed event into memory.
func (u *OrderUseCase) ApplyChange(change model.OrderChange) {
	switch change.Type {
	case model.ChangeInsert:
		if change.New != nil {
			u.add(*change.New)
		}
	case model.ChangeUpdate:
		if change.New == nil {
			return
		}
		next := *change.New
		u.patch(next.ID, func(o *model.Order) {
			o.Status = next.Status
			o.ConfirmationToken = next.ConfirmationToken
			o.PaymentMethod = next.PaymentMethod
			o.DeliveryMethod = next.DeliveryMethod
			o.CustomerAddress = next.CustomerAddress
			o.ChangeDue = next.ChangeDue
		})
	case model.ChangeDelete:
		id := change.OrderID()
		u.mu.Lock()
		for i := range u.list {
			if u.list[i].ID == id {
				u.list = append(u.list[:i], u.list[i+1:]...)
				break
			}
		}
		u.mu.Unlock()
	default:
		u.logger.Warn("unknown order change", slog.String("type", string(change.Type)))
	}
}

// ConfirmDelivery marks the order behind token as delivered.
// Token is matched as a confirmation token first and as a raw order id second.
func (u *OrderUseCase) ConfirmDelivery(ctx context.Context, token string) (model.Confirmation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.Confirmation{State: model.ConfirmationError}, domainErrors.ErrInvalidToken
	}

	lookups := []struct {
		find   func(context.Context, string) (*model.Order, error)
		update func(context.Context, string, model.OrderStatus) error
	}{
		{u.orders.GetByConfirmationToken, u.orders.UpdateStatusByToken},
		{u.orders.GetByID, u.orders.UpdateStatus},
	}

	for _, l := range lookups {
		order, err := l.find(ctx, token)
		if errors.Is(err, domainErrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return model.Confirmation{State: model.ConfirmationError}, err
		}
		if err := l.update(ctx, token, model.OrderStatusDelivered); err != nil {
			return model.Confirmation{State: model.ConfirmationError, OrderID: order.ID}, err
		}
		u.patch(order.ID, func(o *model.Order) { o.Status = model.OrderStatusDelivered })
		u.logger.Info("delivery confirmed", slog.String("order", order.ID))
		return model.Confirmation{State: model.ConfirmationSuccess, OrderID: order.ID}, nil
	}

	return model.Confirmation{State: model.ConfirmationError}, domainErrors.ErrNotFound
}

// add prepends order unless present and alerts staff about it.
func (u *OrderUseCase) add(order model.Order) {
	u.mu.Lock()
	for _, o := range u.list {
		if o.ID == order.ID {
			u.mu.Unlock()
			return
		}
	}
	u.list = append([]model.Order{order}, u.list...)
	u.mu.Unlock()

	if u.alerts != nil {
		u.alerts.Publish(model.OrderAlert{
			OrderID: order.ID,
			Title:   fmt.Sprintf("Novo Pedido de %s!", order.CustomerName),
			Body:    fmt.Sprintf("Total: R$ %.2f", order.Total),
		})
	}
}

func (u *OrderUseCase) patch(id string, apply func(*model.Order)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.list {
		if u.list[i].ID == id {
			apply(&u.list[i])
			return
		}
	}
}

func (u *OrderUseCase) lookup(ctx context.Context, id string) (model.Order, error) {
	if o, ok := u.Get(id); ok {
		return o, nil
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	return *o, nil
}

func (u *OrderUseCase) notification(o model.Order, status model.OrderStatus) (*model.Notification, bool) {
	return whatsapp.StatusNotification(u.store.Current().StoreName, u.baseURL, o, status)
}
