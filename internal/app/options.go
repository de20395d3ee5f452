package app

import (
	"github.com/thenoetrevino/flashquiz/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	repo database.DataStore
}

// WithDataStore replaces the repository built from the db handle
func WithDataStore(repo database.DataStore) Option {
	return func(cfg *appConfig) {
		cfg.repo = repo
	}
}
