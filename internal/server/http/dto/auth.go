package dto

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse carries a message suitable for display.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SessionResponse reports the admin gate state.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Decision      string `json:"decision"`
	AssistEnabled bool   `json:"assistEnabled"`
}

// RedirectResponse tells the caller where to navigate.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}
