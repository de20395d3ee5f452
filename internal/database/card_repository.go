package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/flashquiz/internal/models"
)

const cardFields = "question or answer"

// CardRepo handles all card-related database operations.
type CardRepo struct {
	db *sql.DB
}

// CreateCard inserts a card into an existing deck and returns its new ID.
// A missing deck is reported as a NotFoundError instead of a dangling row.
func (r *CardRepo) CreateCard(ctx context.Context, deckID int64, question, answer string) (int64, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM decks WHERE id = ?`, deckID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return &models.NotFoundError{Entity: "deck", ID: deckID}
		}
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO cards (deck_id, question, answer) VALUES (?, ?, ?)`,
			deckID, question, answer,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return &models.NotFoundError{Entity: "deck", ID: deckID}
			}
			return err
		}

		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, classify(err, fmt.Sprintf("insert card into deck %d", deckID), cardFields)
	}
	return id, nil
}

// GetCardsForDeck returns the deck's cards in insertion order (empty if none)
func (r *CardRepo) GetCardsForDeck(ctx context.Context, deckID int64) ([]models.Card, error) {
	cards, err := queryCards(ctx, r.db,
		`SELECT id, deck_id, question, answer FROM cards WHERE deck_id = ? ORDER BY id`, deckID)
	if err != nil {
		return nil, classify(err, fmt.Sprintf("get cards for deck %d", deckID), cardFields)
	}
	return cards, nil
}

// GetCardByID retrieves a single card; nil when no such card exists
func (r *CardRepo) GetCardByID(ctx context.Context, id int64) (*models.Card, error) {
	c := &models.Card{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, deck_id, question, answer FROM cards WHERE id = ?`, id,
	).Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(err, fmt.Sprintf("get card %d", id), cardFields)
	}
	return c, nil
}

// CountCards returns the number of cards in a deck
func (r *CardRepo) CountCards(ctx context.Context, deckID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards WHERE deck_id = ?`, deckID).Scan(&count)
	if err != nil {
		return 0, classify(err, fmt.Sprintf("count cards for deck %d", deckID), cardFields)
	}
	return count, nil
}

// UpdateCard replaces a card's question and answer. Unknown IDs are a no-op.
func (r *CardRepo) UpdateCard(ctx context.Context, id int64, question, answer string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE cards SET question = ?, answer = ? WHERE id = ?`,
		question, answer, id,
	)
	if err != nil {
		return classify(err, fmt.Sprintf("update card %d", id), cardFields)
	}
	return nil
}

// DeleteCard removes a card. Unknown IDs are a no-op.
func (r *CardRepo) DeleteCard(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id); err != nil {
		return classify(err, fmt.Sprintf("delete card %d", id), cardFields)
	}
	return nil
}

// queryCards runs a card query and scans every row
func queryCards(ctx context.Context, q querier, query string, args ...any) ([]models.Card, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	cards := make([]models.Card, 0)
	for rows.Next() {
		var c models.Card
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Question, &c.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}
	return cards, nil
}
