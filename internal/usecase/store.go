package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/polkiloo/storefront/internal/config"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// StoreUseCase keeps the storefront configuration and its open flag.
type StoreUseCase struct {
	repo    repository.StoreConfigRepository
	profile *config.Profile
	logger  *slog.Logger

	mu      sync.RWMutex
	current model.StoreConfig
}

// NewStoreUseCase constructs StoreUseCase seeded with the profile defaults.
func NewStoreUseCase(repo repository.StoreConfigRepository, profile *config.Profile, logger *slog.Logger) *StoreUseCase {
	return &StoreUseCase{
		repo:    repo,
		profile: profile,
		logger:  logger,
		current: profile.StoreDefaults(),
	}
}

// Load reads the persisted configuration, creating it from defaults when missing.
func (u *StoreUseCase) Load(ctx context.Context) error {
	cfg, err := u.repo.Get(ctx)
	if errors.Is(err, domainErrors.ErrNotFound) {
		defaults := u.profile.StoreDefaults()
		if err := u.repo.Save(ctx, defaults); err != nil {
			return err
		}
		u.logger.Info("store configuration created", slog.String("store", defaults.StoreName))
		u.set(defaults)
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.StoreName == "" {
		cfg.StoreName = u.profile.StoreName
	}
	if cfg.WhatsappNumber == "" {
		cfg.WhatsappNumber = u.profile.WhatsappNumber
	}
	u.set(*cfg)
	return nil
}

// Current returns the configuration snapshot.
func (u *StoreUseCase) Current() model.StoreConfig {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.current
}

// IsOpen reports whether the store accepts orders.
func (u *StoreUseCase) IsOpen() bool {
	return u.Current().IsOpen
}

// SetOpen persists the open flag and then applies it. On failure the previous value stays.
func (u *StoreUseCase) SetOpen(ctx context.Context, open bool) (model.StoreConfig, error) {
	err := u.repo.SetOpen(ctx, open)
	if errors.Is(err, domainErrors.ErrNotFound) {
		cfg := u.Current()
		cfg.IsOpen = open
		err = u.repo.Save(ctx, cfg)
	}
	if err != nil {
		return u.Current(), err
	}

	u.mu.Lock()
	u.current.IsOpen = open
	cfg := u.current
	u.mu.Unlock()
	return cfg, nil
}

func (u *StoreUseCase) set(cfg model.StoreConfig) {
	u.mu.Lock()
	u.current = cfg
	u.mu.Unlock()
}
