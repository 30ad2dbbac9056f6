package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrInvalidToken       = errors.New("invalid token")
	ErrStoreClosed        = errors.New("store is closed")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCheckout    = errors.New("invalid checkout")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrAssistDisabled     = errors.New("assistant disabled")
)
