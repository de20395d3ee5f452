package cli

import (
	"context"

	"github.com/thenoetrevino/flashquiz/internal/app"
	"github.com/thenoetrevino/flashquiz/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp injects an existing App; commands then use it instead of opening the store
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig stores the loaded configuration for subcommands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the stored configuration, or nil
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx == nil {
		return nil
	}
	cfg, _ := ctx.Value(configKey).(*config.Config)
	return cfg
}

// GetCLIFromContext returns a CLI around the injected App if there is one,
// otherwise opens the store from the configuration in ctx (or the defaults).
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg := ConfigFromContext(ctx)
	if cfg == nil {
		loaded, err := config.Load("", nil)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return NewCLI(ctx, cfg)
}
