package auth

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// minSecretBytes matches the SHA-256 block the session signature is keyed with.
const minSecretBytes = 32

// Module provides the admin password hasher and session token strategy.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newTokenStrategy(p strategyParams) Strategy {
	if len(p.Config.AuthSecret) < minSecretBytes {
		p.Logger.Warn("auth secret is short; sessions are easier to forge", slog.Int("bytes", len(p.Config.AuthSecret)))
	}
	return NewHMACStrategy(p.Config.AuthSecret, Options{TTL: p.Config.SessionTTL})
}
