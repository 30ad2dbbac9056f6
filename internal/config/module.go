package config

import "go.uber.org/fx"

// Module supplies an already loaded configuration and its store profile to fx graphs.
func Module(cfg *Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(func(c *Config) *Profile { return c.Profile }),
	)
}
