package model

// Notification is an outbound customer message ready to be opened as a deep link.
type Notification struct {
	OrderID string
	Status  OrderStatus
	Phone   string
	Text    string
	URL     string
}

// OrderAlert announces a newly observed order to staff.
type OrderAlert struct {
	OrderID string
	Title   string
	Body    string
}
