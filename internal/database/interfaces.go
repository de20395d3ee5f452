package database

import (
	"context"

	"github.com/thenoetrevino/flashquiz/internal/models"
)

// DeckReader defines read operations for decks.
type DeckReader interface {
	GetAllDecks(ctx context.Context) ([]models.Deck, error)
	GetDeckByID(ctx context.Context, id int64) (*models.Deck, error)
	GetDeckByName(ctx context.Context, name string) (*models.Deck, error)
}

// DeckWriter defines write operations for decks.
type DeckWriter interface {
	CreateDeck(ctx context.Context, name string) (int64, error)
	DeleteDeck(ctx context.Context, id int64) error
	ResolveDeck(ctx context.Context, name string) (int64, bool, error)
}

// DeckRepository combines all deck-related operations.
type DeckRepository interface {
	DeckReader
	DeckWriter
}

// CardReader defines read operations for cards.
type CardReader interface {
	GetCardsForDeck(ctx context.Context, deckID int64) ([]models.Card, error)
	GetCardByID(ctx context.Context, id int64) (*models.Card, error)
	CountCards(ctx context.Context, deckID int64) (int, error)
}

// CardWriter defines write operations for cards.
type CardWriter interface {
	CreateCard(ctx context.Context, deckID int64, question, answer string) (int64, error)
	UpdateCard(ctx context.Context, id int64, question, answer string) error
	DeleteCard(ctx context.Context, id int64) error
}

// CardRepository combines all card-related operations.
type CardRepository interface {
	CardReader
	CardWriter
}

// DataStore defines the unified interface for all data operations.
type DataStore interface {
	DeckRepository
	CardRepository
}

var _ DataStore = (*Repository)(nil)
