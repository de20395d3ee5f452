package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

// setupTestDB creates an in-memory database with the full schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), Options{Path: MemoryPath})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flashcards.db")
	db, err := InitDB(context.Background(), Options{Path: path})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, path
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, path string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), Options{Path: path})
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { _ = newDB.Close() })
	return newDB
}

// mustCreateDeck creates a deck or fails the test
func mustCreateDeck(t *testing.T, repo *Repository, name string) int64 {
	t.Helper()
	id, err := repo.CreateDeck(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create deck %q: %v", name, err)
	}
	return id
}

// mustCreateCard creates a card or fails the test
func mustCreateCard(t *testing.T, repo *Repository, deckID int64, question, answer string) int64 {
	t.Helper()
	id, err := repo.CreateCard(context.Background(), deckID, question, answer)
	if err != nil {
		t.Fatalf("Failed to create card %q: %v", question, err)
	}
	return id
}
