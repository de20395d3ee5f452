// Package deck holds the deck operations of the storage engine: validation at
// the boundary, then persistence through the database repositories.
package deck

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/flashquiz/internal/models"
	"github.com/thenoetrevino/flashquiz/internal/validation"
)

// Service defines all deck-related business operations
type Service interface {
	// Read operations
	GetAllDecks(ctx context.Context) ([]models.Deck, error)
	GetDeckByID(ctx context.Context, id int64) (*models.Deck, error)
	GetDeckByName(ctx context.Context, name string) (*models.Deck, error)

	// Write operations
	CreateDeck(ctx context.Context, req CreateDeckRequest) (*models.Deck, error)
	DeleteDeck(ctx context.Context, id int64) error
	ResolveDeck(ctx context.Context, name string) (int64, bool, error)
}

// CreateDeckRequest encapsulates data for creating a deck
type CreateDeckRequest struct {
	Name string `validate:"notblank"`
}

// repository defines the data access methods needed by the deck service
type repository interface {
	CreateDeck(ctx context.Context, name string) (int64, error)
	GetAllDecks(ctx context.Context) ([]models.Deck, error)
	GetDeckByID(ctx context.Context, id int64) (*models.Deck, error)
	GetDeckByName(ctx context.Context, name string) (*models.Deck, error)
	DeleteDeck(ctx context.Context, id int64) error
	ResolveDeck(ctx context.Context, name string) (int64, bool, error)
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new deck service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllDecks retrieves every deck, ordered by ID, with cards populated
func (s *service) GetAllDecks(ctx context.Context) ([]models.Deck, error) {
	return s.repo.GetAllDecks(ctx)
}

// GetDeckByID retrieves a deck with its cards; nil, nil when absent
func (s *service) GetDeckByID(ctx context.Context, id int64) (*models.Deck, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.repo.GetDeckByID(ctx, id)
}

// GetDeckByName retrieves a deck by exact name; nil, nil when absent
func (s *service) GetDeckByName(ctx context.Context, name string) (*models.Deck, error) {
	return s.repo.GetDeckByName(ctx, name)
}

// CreateDeck validates and persists a new deck
func (s *service) CreateDeck(ctx context.Context, req CreateDeckRequest) (*models.Deck, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	id, err := s.repo.CreateDeck(ctx, req.Name)
	if err != nil {
		slog.Warn("deck creation failed", "name", req.Name, "error", err)
		return nil, err
	}

	slog.Info("deck created", "deck_id", id, "name", req.Name)
	return &models.Deck{ID: id, Name: req.Name, Cards: []models.Card{}}, nil
}

// DeleteDeck removes a deck and all of its cards. Unknown IDs are a no-op.
func (s *service) DeleteDeck(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDeck(ctx, id); err != nil {
		return err
	}
	slog.Info("deck deleted", "deck_id", id)
	return nil
}

// ResolveDeck finds a deck by exact name or creates it, returning its ID and
// whether it was created.
func (s *service) ResolveDeck(ctx context.Context, name string) (int64, bool, error) {
	if err := validation.Struct(CreateDeckRequest{Name: name}); err != nil {
		return 0, false, err
	}

	id, created, err := s.repo.ResolveDeck(ctx, name)
	if err != nil {
		return 0, false, err
	}
	if created {
		slog.Info("deck created", "deck_id", id, "name", name)
	}
	return id, created, nil
}
