package dto

import "time"

// CartLineRequest is a product and quantity in the checkout cart.
type CartLineRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// CheckoutRequest is the customer's order submission.
type CheckoutRequest struct {
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	CustomerAddress string            `json:"customerAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
	DeliveryMethod  string            `json:"deliveryMethod"`
	Troco           *float64          `json:"troco"`
	Items           []CartLineRequest `json:"items"`
}

// CheckoutResponse hands the order summary to the store chat.
type CheckoutResponse struct {
	Order       OrderResponse `json:"order"`
	Summary     string        `json:"summary"`
	WhatsappURL string        `json:"whatsappUrl"`
}

// LineItemResponse is an order line snapshot.
type LineItemResponse struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// OrderResponse describes a placed order.
type OrderResponse struct {
	ID                string             `json:"id"`
	CustomerName      string             `json:"customerName"`
	CustomerPhone     string             `json:"customerPhone"`
	Items             []LineItemResponse `json:"items"`
	Total             float64            `json:"total"`
	Timestamp         time.Time          `json:"timestamp"`
	Status            string             `json:"status"`
	ConfirmationToken string             `json:"confirmationToken,omitempty"`
	PaymentMethod     string             `json:"paymentMethod"`
	DeliveryMethod    string             `json:"deliveryMethod"`
	CustomerAddress   string             `json:"customerAddress,omitempty"`
	Troco             *float64           `json:"troco,omitempty"`
}

// StatusRequest sets a new order status.
type StatusRequest struct {
	Status string `json:"status"`
}

// NotificationResponse is a composed customer message.
type NotificationResponse struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// StatusResponse reports the updated order and its optional notification.
type StatusResponse struct {
	Order        OrderResponse         `json:"order"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

// ConfirmationResponse reports the delivery confirmation state.
type ConfirmationResponse struct {
	State   string `json:"state"`
	OrderID string `json:"orderId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AlertEvent is a new-order alert pushed to staff.
type AlertEvent struct {
	OrderID string `json:"orderId"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}
