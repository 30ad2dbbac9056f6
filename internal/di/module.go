package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/adapter/genai"
	"github.com/polkiloo/storefront/internal/app"
	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/logger"
	"github.com/polkiloo/storefront/internal/notify"
	"github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/server/http/router"
	"github.com/polkiloo/storefront/internal/storage/postgres"
	"github.com/polkiloo/storefront/internal/usecase"
)

// Module composes the storefront graph around a loaded configuration.
func Module(cfg *config.Config, opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module(cfg),
		logger.Module,
		auth.Module,
		postgres.Module,
		genai.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
