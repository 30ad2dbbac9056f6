package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.Factory { return s },
		func(s *Storage) repository.ChangeSource { return s.OrderChanges() },
		provideRepositories,
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

type repositoriesOut struct {
	fx.Out

	Admins      repository.AdminRepository
	Products    repository.ProductRepository
	Orders      repository.OrderRepository
	StoreConfig repository.StoreConfigRepository
}

func provideRepositories(f repository.Factory) repositoriesOut {
	return repositoriesOut{
		Admins:      f.Admins(),
		Products:    f.Products(),
		Orders:      f.Orders(),
		StoreConfig: f.StoreConfig(),
	}
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
