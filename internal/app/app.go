package app

import (
	"database/sql"

	"github.com/thenoetrevino/flashquiz/internal/database"
	cardservice "github.com/thenoetrevino/flashquiz/internal/services/card"
	deckservice "github.com/thenoetrevino/flashquiz/internal/services/deck"
)

// App holds all application services and provides dependency injection.
// The shell, the CLI subcommands and the import bridge all go through it.
type App struct {
	db   *sql.DB
	repo database.DataStore

	DeckService deckservice.Service
	CardService cardservice.Service
}

// New creates a new App with all services initialized.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := cfg.repo
	if repo == nil {
		repo = database.NewRepository(db)
	}

	return &App{
		db:          db,
		repo:        repo,
		DeckService: deckservice.NewService(repo),
		CardService: cardservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database handle. Safe to call on an App built without one.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
