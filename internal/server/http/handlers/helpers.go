package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

const (
	msgInvalidCredentials = "Email ou senha incorretos."
	msgEmailNotConfirmed  = "Email não confirmado. Ative o usuário no painel de administração."
	msgInternal           = "Erro interno. Tente novamente."
	msgConfirmFailed      = "Não foi possível confirmar a entrega. Tente novamente."
)

// CurrentAdminID extracts authenticated admin identifier from context.
func CurrentAdminID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.AdminIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, domainErrors.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrEmailNotConfirmed):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrStoreClosed):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrInvalidCheckout),
		errors.Is(err, domainErrors.ErrInvalidProduct),
		errors.Is(err, domainErrors.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrAssistDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError hides unexpected failures behind msgInternal; the cause is kept
// on the gin context for the request log.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = msgInternal
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}
