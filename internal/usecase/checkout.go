package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/cart"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/pkg/whatsapp"
)

const (
	orderIDLength   = 5
	orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	maxIDAttempts   = 5

	maxNameLength    = 120
	maxAddressLength = 300
	maxPhoneDigits   = 20
	maxCheckoutLines = 50
)

// CheckoutUseCase turns a customer's cart into a placed order.
type CheckoutUseCase struct {
	catalog *CatalogUseCase
	store   *StoreUseCase
	orders  *OrderUseCase
	profile *config.Profile
	logger  *slog.Logger

	newOrderID func() string
	newToken   func() string
	now        func() time.Time
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(catalog *CatalogUseCase, store *StoreUseCase, orders *OrderUseCase, profile *config.Profile, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		catalog:    catalog,
		store:      store,
		orders:     orders,
		profile:    profile,
		logger:     logger,
		newOrderID: randomOrderID,
		newToken:   uuid.NewString,
		now:        time.Now,
	}
}

// Checkout validates req, prices it against the live catalog and places the order.
// Nothing is written unless every field is valid.
func (u *CheckoutUseCase) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.PlacedOrder, error) {
	if !u.store.IsOpen() {
		return nil, domainErrors.ErrStoreClosed
	}

	order, err := u.prepare(req)
	if err != nil {
		return nil, err
	}

	if len(req.Lines) > maxCheckoutLines {
		return nil, fmt.Errorf("%w: at most %d lines per order", domainErrors.ErrInvalidCheckout, maxCheckoutLines)
	}
	c := cart.New()
	for _, line := range req.Lines {
		p, ok := u.catalog.Get(line.ProductID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown product %s", domainErrors.ErrInvalidCheckout, line.ProductID)
		}
		err := c.Put(p, line.Qty, u.store.IsOpen())
		if errors.Is(err, cart.ErrInvalidQuantity) {
			return nil, fmt.Errorf("%w: %w for %s", domainErrors.ErrInvalidCheckout, err, line.ProductID)
		}
		if err != nil {
			return nil, err
		}
	}
	if c.Empty() {
		return nil, domainErrors.ErrEmptyCart
	}

	order.Items = c.Lines()
	order.Total = c.Total().Round(2).InexactFloat64()
	order.CreatedAt = u.now().Truncate(time.Millisecond)
	order.Status = model.OrderStatusPending
	order.ConfirmationToken = u.newToken()

	for attempt := 1; ; attempt++ {
		order.ID = u.newOrderID()
		placed, err := u.orders.Place(ctx, order)
		if errors.Is(err, domainErrors.ErrAlreadyExists) && attempt < maxIDAttempts {
			u.logger.Warn("order id collision", slog.String("order", order.ID))
			continue
		}
		if err != nil {
			return nil, err
		}
		return placed, nil
	}
}

func (u *CheckoutUseCase) prepare(req model.CheckoutRequest) (model.Order, error) {
	order := model.Order{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   whatsapp.NormalizePhone(req.CustomerPhone),
		CustomerAddress: strings.TrimSpace(req.CustomerAddress),
		PaymentMethod:   strings.TrimSpace(req.PaymentMethod),
		DeliveryMethod:  req.DeliveryMethod,
	}

	if order.CustomerName == "" {
		return order, fmt.Errorf("%w: customer name is required", domainErrors.ErrInvalidCheckout)
	}
	if utf8.RuneCountInString(order.CustomerName) > maxNameLength {
		return order, fmt.Errorf("%w: customer name is too long", domainErrors.ErrInvalidCheckout)
	}
	if order.CustomerPhone == "" {
		return order, fmt.Errorf("%w: customer phone is required", domainErrors.ErrInvalidCheckout)
	}
	if len(order.CustomerPhone) > maxPhoneDigits {
		return order, fmt.Errorf("%w: customer phone is too long", domainErrors.ErrInvalidCheckout)
	}

	switch order.DeliveryMethod {
	case "":
		order.DeliveryMethod = model.DeliveryMethodDelivery
	case model.DeliveryMethodDelivery, model.DeliveryMethodPickup:
	default:
		return order, fmt.Errorf("%w: unknown delivery method %q", domainErrors.ErrInvalidCheckout, order.DeliveryMethod)
	}
	if order.DeliveryMethod == model.DeliveryMethodDelivery {
		if order.CustomerAddress == "" {
			return order, fmt.Errorf("%w: address is required for delivery", domainErrors.ErrInvalidCheckout)
		}
		if utf8.RuneCountInString(order.CustomerAddress) > maxAddressLength {
			return order, fmt.Errorf("%w: address is too long", domainErrors.ErrInvalidCheckout)
		}
	} else {
		order.CustomerAddress = ""
	}

	switch order.PaymentMethod {
	case "":
		order.PaymentMethod = u.profile.DefaultPayment
	case model.PaymentMethodPix, model.PaymentMethodCard, model.PaymentMethodCash:
	default:
		return order, fmt.Errorf("%w: unknown payment method %q", domainErrors.ErrInvalidCheckout, order.PaymentMethod)
	}

	if order.PaymentMethod == model.PaymentMethodCash && req.ChangeDue != nil {
		if *req.ChangeDue < 0 {
			return order, fmt.Errorf("%w: change must not be negative", domainErrors.ErrInvalidCheckout)
		}
		due := *req.ChangeDue
		order.ChangeDue = &due
	}
	return order, nil
}

func randomOrderID() string {
	b := make([]byte, orderIDLength)
	for i := range b {
		b[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}
	return string(b)
}
