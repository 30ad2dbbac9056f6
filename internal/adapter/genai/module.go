package genai

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Module exposes the product copy client to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if !p.Config.AssistEnabled() {
		return NoopClient{}, nil
	}
	storeName := ""
	if p.Config.Profile != nil {
		storeName = p.Config.Profile.StoreName
	}
	return NewHTTPClient(p.Config.GenAIBaseURL, p.Config.GenAIModel, p.Config.GenAIAPIKey, storeName, p.Logger)
}
