package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/usecase"
	"github.com/polkiloo/storefront/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewStorefrontFacade, fx.As(fx.Self()), fx.As(new(handlers.StorefrontFacade))),
		newHTTPServer,
		newFeedListener,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config  *config.Config
	Handler http.Handler
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Handler,
	}
}

type workerParams struct {
	fx.In

	Source repository.ChangeSource
	Orders *usecase.OrderUseCase
	Config *config.Config
	Logger *slog.Logger
}

func newFeedListener(p workerParams) *worker.FeedListener {
	return worker.NewFeedListener(p.Source, p.Orders, p.Config.FeedRetryInterval, p.Logger)
}

// Loader fills in-memory state from storage at startup.
type Loader interface {
	Load(ctx context.Context) error
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.FeedListener
	Config     *config.Config
	Store      *usecase.StoreUseCase
	Catalog    *usecase.CatalogUseCase
	Orders     *usecase.OrderUseCase
	Auth       *usecase.AuthUseCase
}

func registerLifecycle(p lifecycleParams) {
	loaders := []struct {
		name   string
		loader Loader
	}{
		{"store", p.Store},
		{"catalog", p.Catalog},
		{"orders", p.Orders},
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting storefront", slog.String("addr", p.Server.Addr))

			// failed loads leave the state empty; the service keeps running
			for _, l := range loaders {
				if err := l.loader.Load(ctx); err != nil {
					p.Logger.Error("initial load failed", slog.String("state", l.name), slog.String("error", err.Error()))
				}
			}

			created, err := p.Auth.EnsureAdmin(ctx, p.Config.AdminEmail, p.Config.AdminPassword)
			if err != nil {
				p.Logger.Error("admin seed failed", slog.String("error", err.Error()))
			} else if created {
				p.Logger.Info("admin account created", slog.String("email", p.Config.AdminEmail))
			}

			p.Worker.Start(context.WithoutCancel(ctx))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("storefront stopped")
			return nil
		},
	})
}
