package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/flashquiz/internal/app"
	"github.com/thenoetrevino/flashquiz/internal/config"
	"github.com/thenoetrevino/flashquiz/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	owned bool     // App was opened here and must be closed here
}

// NewCLI opens the store described by cfg and builds the application container
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, database.Options{
		Path:          cfg.DB.Path,
		BusyTimeoutMS: cfg.DB.BusyTimeoutMS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: app.New(db), owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
