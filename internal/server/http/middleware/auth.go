package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
)

const (
	// AdminIDContextKey is a gin context key for the authenticated admin identifier.
	AdminIDContextKey = "adminID"
	authCookieName    = "storefront_session"
)

// TokenParser resolves a session token into an admin identifier.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// ResolveSession feeds the request's session into a fresh gate.
// Errors other than an invalid token are returned unresolved.
func ResolveSession(c *gin.Context, parser TokenParser) (*pkgAuth.Gate, int64, error) {
	gate := pkgAuth.NewGate()
	token := extractToken(c)
	if token == "" {
		gate.Apply(pkgAuth.SessionSignedOut)
		return gate, 0, nil
	}

	adminID, err := parser.ParseToken(token)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrInvalidToken) {
			gate.Apply(pkgAuth.SessionSignedOut)
			return gate, 0, nil
		}
		return gate, 0, err
	}
	gate.Apply(pkgAuth.SessionSignedIn)
	return gate, adminID, nil
}

// AdminRequired lets the request through only when the gate decides to proceed.
// Otherwise it answers 401 pointing at the login page.
func AdminRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		gate, adminID, err := ResolveSession(c, parser)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if gate.Decide() != pkgAuth.DecisionProceed {
			c.Header("Location", pkgAuth.LoginPath)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"redirect": pkgAuth.LoginPath})
			return
		}

		c.Set(AdminIDContextKey, adminID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie valid for ttl.
func SetAuthCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, int(ttl.Seconds()), "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
