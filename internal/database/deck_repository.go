package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/flashquiz/internal/models"
)

// DeckRepo handles all deck-related database operations.
type DeckRepo struct {
	db *sql.DB
}

// CreateDeck inserts a deck and returns its new ID
func (r *DeckRepo) CreateDeck(ctx context.Context, name string) (int64, error) {
	return insertDeck(ctx, r.db, name)
}

func insertDeck(ctx context.Context, q querier, name string) (int64, error) {
	result, err := q.ExecContext(ctx, `INSERT INTO decks (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, &models.DuplicateNameError{Name: name}
		}
		return 0, classify(err, fmt.Sprintf("insert deck '%s'", name), "name")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, classify(err, "get deck ID after insert", "name")
	}
	return id, nil
}

// GetAllDecks retrieves every deck ordered by ID, each with its cards
func (r *DeckRepo) GetAllDecks(ctx context.Context) ([]models.Deck, error) {
	var decks []models.Deck
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		decks, err = queryDecks(ctx, tx, `SELECT id, name FROM decks ORDER BY id`)
		if err != nil {
			return err
		}

		cards, err := queryCards(ctx, tx, `SELECT id, deck_id, question, answer FROM cards ORDER BY id`)
		if err != nil {
			return err
		}

		byDeck := make(map[int64][]models.Card, len(decks))
		for _, c := range cards {
			byDeck[c.DeckID] = append(byDeck[c.DeckID], c)
		}
		for i := range decks {
			if cs, ok := byDeck[decks[i].ID]; ok {
				decks[i].Cards = cs
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "query all decks", "name")
	}
	return decks, nil
}

// GetDeckByID retrieves a deck with its cards; nil when no such deck exists
func (r *DeckRepo) GetDeckByID(ctx context.Context, id int64) (*models.Deck, error) {
	deck, err := r.getDeck(ctx, `SELECT id, name FROM decks WHERE id = ?`, id)
	if err != nil {
		return nil, classify(err, fmt.Sprintf("get deck %d", id), "name")
	}
	return deck, nil
}

// GetDeckByName retrieves a deck by exact name; nil when no such deck exists
func (r *DeckRepo) GetDeckByName(ctx context.Context, name string) (*models.Deck, error) {
	deck, err := r.getDeck(ctx, `SELECT id, name FROM decks WHERE name = ?`, name)
	if err != nil {
		return nil, classify(err, fmt.Sprintf("get deck '%s'", name), "name")
	}
	return deck, nil
}

func (r *DeckRepo) getDeck(ctx context.Context, query string, arg any) (*models.Deck, error) {
	var deck *models.Deck
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		d := models.Deck{}
		if err := tx.QueryRowContext(ctx, query, arg).Scan(&d.ID, &d.Name); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}

		cards, err := queryCards(ctx, tx,
			`SELECT id, deck_id, question, answer FROM cards WHERE deck_id = ? ORDER BY id`, d.ID)
		if err != nil {
			return err
		}
		d.Cards = cards
		deck = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deck, nil
}

// DeleteDeck removes a deck; its cards go with it through ON DELETE CASCADE.
// Deleting an unknown ID is not an error.
func (r *DeckRepo) DeleteDeck(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id); err != nil {
		return classify(err, fmt.Sprintf("delete deck %d", id), "name")
	}
	return nil
}

// ResolveDeck returns the ID of the deck with the given name, creating it
// first if needed. Lookup and insert share one transaction.
func (r *DeckRepo) ResolveDeck(ctx context.Context, name string) (int64, bool, error) {
	var (
		id      int64
		created bool
	)
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `SELECT id FROM decks WHERE name = ?`, name).Scan(&id)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		id, err = insertDeck(ctx, tx, name)
		if err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return 0, false, classify(err, fmt.Sprintf("resolve deck '%s'", name), "name")
	}
	return id, created, nil
}

// queryDecks runs a deck query and scans every row (cards are not loaded)
func queryDecks(ctx context.Context, q querier, query string, args ...any) ([]models.Deck, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	decks := make([]models.Deck, 0, 10)
	for rows.Next() {
		d := models.Deck{Cards: []models.Card{}}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan deck row: %w", err)
		}
		decks = append(decks, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deck rows: %w", err)
	}
	return decks, nil
}
