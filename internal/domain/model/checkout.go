package model

// CartLine references a catalog product and the quantity requested at checkout.
type CartLine struct {
	ProductID string
	Qty       int
}

// CheckoutRequest is a customer's order submission. Lines are priced against the live catalog.
type CheckoutRequest struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	PaymentMethod   string
	DeliveryMethod  DeliveryMethod
	ChangeDue       *float64
	Lines           []CartLine
}

// PlacedOrder is the result of a successful checkout.
type PlacedOrder struct {
	Order       Order
	Summary     string
	WhatsappURL string
}

// ConfirmationState is the outcome of a delivery confirmation attempt.
type ConfirmationState string

const (
	ConfirmationLoading ConfirmationState = "loading"
	ConfirmationSuccess ConfirmationState = "success"
	ConfirmationError   ConfirmationState = "error"
)

// Confirmation reports the delivery confirmation state for a token.
type Confirmation struct {
	State   ConfirmationState
	OrderID string
}
