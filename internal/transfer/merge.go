package transfer

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/flashquiz/internal/models"
	cardservice "github.com/thenoetrevino/flashquiz/internal/services/card"
)

// DeckResolver finds a deck by exact name or creates it
type DeckResolver interface {
	ResolveDeck(ctx context.Context, name string) (int64, bool, error)
}

// CardAdder appends a card to a deck
type CardAdder interface {
	AddCard(ctx context.Context, req cardservice.AddCardRequest) (*models.Card, error)
}

// DeckFailure records an imported deck that could not be resolved
type DeckFailure struct {
	Deck string
	Err  error
}

// CardFailure records an imported card that could not be added
type CardFailure struct {
	Deck     string
	Question string
	Err      error
}

// MergeReport summarizes one import batch. Partial success is normal.
type MergeReport struct {
	DecksCreated int
	DecksReused  int
	CardsAdded   int
	DeckFailures []DeckFailure
	CardFailures []CardFailure
}

// Failed reports whether any deck or card in the batch was rejected
func (r MergeReport) Failed() bool {
	return len(r.DeckFailures) > 0 || len(r.CardFailures) > 0
}

// Merge resolves every imported deck by name and appends all of its cards as
// new cards. Re-importing the same document duplicates its cards; nothing is
// de-duplicated. A failing deck skips only its own cards.
func Merge(ctx context.Context, decks DeckResolver, cards CardAdder, imported []models.Deck) MergeReport {
	var report MergeReport

	for _, d := range imported {
		deckID, created, err := decks.ResolveDeck(ctx, d.Name)
		if err != nil {
			slog.Warn("import: deck skipped", "deck", d.Name, "error", err)
			report.DeckFailures = append(report.DeckFailures, DeckFailure{Deck: d.Name, Err: err})
			continue
		}
		if created {
			report.DecksCreated++
		} else {
			report.DecksReused++
		}

		for _, c := range d.Cards {
			_, err := cards.AddCard(ctx, cardservice.AddCardRequest{
				DeckID:   deckID,
				Question: c.Question,
				Answer:   c.Answer,
			})
			if err != nil {
				slog.Warn("import: card skipped", "deck", d.Name, "question", c.Question, "error", err)
				report.CardFailures = append(report.CardFailures, CardFailure{Deck: d.Name, Question: c.Question, Err: err})
				continue
			}
			report.CardsAdded++
		}
	}

	slog.Info("import merged",
		"decks_created", report.DecksCreated,
		"decks_reused", report.DecksReused,
		"cards_added", report.CardsAdded,
		"failures", len(report.DeckFailures)+len(report.CardFailures),
	)
	return report
}
