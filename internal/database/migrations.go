package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied on every start; each statement is create-if-absent.
// One-argument trim() strips only spaces, so the blank checks list the
// ASCII whitespace set explicitly.
const schema = `
-- Decks own cards; names are unique and never blank
CREATE TABLE IF NOT EXISTS decks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE CHECK (length(trim(name, ' ' || char(9, 10, 11, 12, 13))) > 0)
);

-- Cards belong to exactly one deck and go away with it
CREATE TABLE IF NOT EXISTS cards (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	deck_id INTEGER NOT NULL,
	question TEXT NOT NULL CHECK (length(trim(question, ' ' || char(9, 10, 11, 12, 13))) > 0),
	answer TEXT NOT NULL CHECK (length(trim(answer, ' ' || char(9, 10, 11, 12, 13))) > 0),
	FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_cards_deck ON cards(deck_id, id);
`

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
