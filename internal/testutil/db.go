// Package testutil provides shared fixtures for service, bridge and CLI tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/flashquiz/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.Options{Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestDeck inserts a deck directly and returns its ID
func CreateTestDeck(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	result, err := db.ExecContext(context.Background(), "INSERT INTO decks (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to create test deck: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get deck ID: %v", err)
	}
	return id
}

// CreateTestCard inserts a card directly and returns its ID
func CreateTestCard(t *testing.T, db *sql.DB, deckID int64, question, answer string) int64 {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO cards (deck_id, question, answer) VALUES (?, ?, ?)", deckID, question, answer)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get card ID: %v", err)
	}
	return id
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}
