package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// AuthHandler processes staff sign-in and sign-out.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: msgInvalidCredentials})
		case errors.Is(err, domainErrors.ErrEmailNotConfirmed):
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: msgEmailNotConfirmed})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
		return
	}

	middleware.SetAuthCookie(c, token, h.facade.SessionTTL())
	c.Status(http.StatusOK)
}

// Logout handles POST /api/admin/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, dto.RedirectResponse{Redirect: pkgAuth.HomePath})
}

// Session handles GET /api/admin/session.
func (h *AuthHandler) Session(c *gin.Context) {
	gate, _, err := middleware.ResolveSession(c, h.facade)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{
		Authenticated: gate.Authenticated(),
		Decision:      gate.Decide().String(),
		AssistEnabled: h.facade.AssistEnabled(),
	})
}
