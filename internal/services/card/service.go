// Package card holds the card operations of the storage engine.
package card

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/flashquiz/internal/models"
	"github.com/thenoetrevino/flashquiz/internal/validation"
)

// Service defines all card-related business operations
type Service interface {
	// Read operations
	GetCardsForDeck(ctx context.Context, deckID int64) ([]models.Card, error)
	GetCardByID(ctx context.Context, id int64) (*models.Card, error)
	CountCards(ctx context.Context, deckID int64) (int, error)

	// Write operations
	AddCard(ctx context.Context, req AddCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, req UpdateCardRequest) error
	DeleteCard(ctx context.Context, id int64) error
}

// AddCardRequest encapsulates data for adding a card to a deck
type AddCardRequest struct {
	DeckID   int64
	Question string `validate:"notblank"`
	Answer   string `validate:"notblank"`
}

// UpdateCardRequest replaces both text fields of an existing card
type UpdateCardRequest struct {
	ID       int64
	Question string `validate:"notblank"`
	Answer   string `validate:"notblank"`
}

// repository defines the data access methods needed by the card service
type repository interface {
	CreateCard(ctx context.Context, deckID int64, question, answer string) (int64, error)
	GetCardsForDeck(ctx context.Context, deckID int64) ([]models.Card, error)
	GetCardByID(ctx context.Context, id int64) (*models.Card, error)
	CountCards(ctx context.Context, deckID int64) (int, error)
	UpdateCard(ctx context.Context, id int64, question, answer string) error
	DeleteCard(ctx context.Context, id int64) error
}

type service struct {
	repo repository
}

// NewService creates a new card service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetCardsForDeck returns the deck's cards in insertion order
func (s *service) GetCardsForDeck(ctx context.Context, deckID int64) ([]models.Card, error) {
	return s.repo.GetCardsForDeck(ctx, deckID)
}

// GetCardByID returns a card, or nil, nil when absent
func (s *service) GetCardByID(ctx context.Context, id int64) (*models.Card, error) {
	return s.repo.GetCardByID(ctx, id)
}

// CountCards returns the number of cards stored for a deck
func (s *service) CountCards(ctx context.Context, deckID int64) (int, error) {
	return s.repo.CountCards(ctx, deckID)
}

// AddCard validates and stores a new card in an existing deck
func (s *service) AddCard(ctx context.Context, req AddCardRequest) (*models.Card, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	id, err := s.repo.CreateCard(ctx, req.DeckID, req.Question, req.Answer)
	if err != nil {
		slog.Warn("card creation failed", "deck_id", req.DeckID, "error", err)
		return nil, err
	}

	slog.Debug("card added", "card_id", id, "deck_id", req.DeckID)
	return &models.Card{ID: id, DeckID: req.DeckID, Question: req.Question, Answer: req.Answer}, nil
}

// UpdateCard replaces question and answer. Unknown IDs are a no-op.
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	if err := s.repo.UpdateCard(ctx, req.ID, req.Question, req.Answer); err != nil {
		return err
	}
	slog.Debug("card updated", "card_id", req.ID)
	return nil
}

// DeleteCard removes a card. Unknown IDs are a no-op.
func (s *service) DeleteCard(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCard(ctx, id); err != nil {
		return err
	}
	slog.Debug("card deleted", "card_id", id)
	return nil
}
