package model

import "time"

// OrderStatus describes the order lifecycle. Values are stored as shown to staff.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pendente"
	OrderStatusReceived       OrderStatus = "Recebido"
	OrderStatusPreparing      OrderStatus = "Em preparo"
	OrderStatusOutForDelivery OrderStatus = "Saiu para entrega"
	OrderStatusDelivered      OrderStatus = "Entregue"
	OrderStatusCancelled      OrderStatus = "Cancelado"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusReceived,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus reports whether s names a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// IsTerminal reports whether no further lifecycle step follows the status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// IsLegalTransition is the transition policy for staff status changes.
// Staff may pick any status from any status, including terminal ones.
func IsLegalTransition(from, to OrderStatus) bool {
	return true
}

// DeliveryMethod tells whether the order is delivered or picked up.
type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "Entrega"
	DeliveryMethodPickup   DeliveryMethod = "Retirada"
)

const (
	PaymentMethodPix  = "Pix"
	PaymentMethodCard = "Cartão"
	PaymentMethodCash = "Dinheiro"
)

// DefaultPaymentMethod applies to orders created before payment methods were recorded.
const DefaultPaymentMethod = PaymentMethodPix

// LineItem is a snapshot of a product at order time.
type LineItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Order is a placed order. Optional fields are empty for orders created by older clients.
type Order struct {
	ID                string
	CustomerName      string
	CustomerPhone     string
	Items             []LineItem
	Total             float64
	CreatedAt         time.Time
	Status            OrderStatus
	ConfirmationToken string
	PaymentMethod     string
	DeliveryMethod    DeliveryMethod
	CustomerAddress   string
	ChangeDue         *float64
}

// ConfirmationKey returns the value used in delivery confirmation links.
func (o Order) ConfirmationKey() string {
	if o.ConfirmationToken != "" {
		return o.ConfirmationToken
	}
	return o.ID
}

// Payment returns the payment method, falling back to the default.
func (o Order) Payment() string {
	if o.PaymentMethod == "" {
		return DefaultPaymentMethod
	}
	return o.PaymentMethod
}

// Delivery returns the delivery method, falling back to delivery.
func (o Order) Delivery() DeliveryMethod {
	if o.DeliveryMethod == "" {
		return DeliveryMethodDelivery
	}
	return o.DeliveryMethod
}
