package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/polkiloo/storefront/internal/adapter/genai"
	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// AssistUseCase pre-fills product copy. Failures never reach the caller.
type AssistUseCase struct {
	client  genai.Client
	enabled bool
	profile *config.Profile
	logger  *slog.Logger
}

// NewAssistUseCase constructs AssistUseCase.
func NewAssistUseCase(client genai.Client, cfg *config.Config, logger *slog.Logger) *AssistUseCase {
	return &AssistUseCase{client: client, enabled: cfg.AssistEnabled(), profile: cfg.Profile, logger: logger}
}

// Enabled reports whether an API key is configured.
func (u *AssistUseCase) Enabled() bool {
	return u.enabled
}

// Suggest returns generated copy for productName, or false when none is available.
func (u *AssistUseCase) Suggest(ctx context.Context, productName string) (*model.ProductSuggestion, bool) {
	productName = strings.TrimSpace(productName)
	if !u.enabled || productName == "" {
		return nil, false
	}

	s, err := u.client.Suggest(ctx, productName)
	if err != nil {
		u.logger.Warn("product assist failed", slog.String("product", productName), slog.String("error", err.Error()))
		return nil, false
	}
	if u.profile != nil && s.Category != "" && !u.profile.HasCategory(s.Category) {
		s.Category = ""
	}
	return s, true
}
