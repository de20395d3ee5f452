package database

import (
	"context"
	"testing"
)

// TestDecksPersistAcrossRestart verifies that committed writes survive closing the store
func TestDecksPersistAcrossRestart(t *testing.T) {
	db, path := setupTestDBFile(t)
	repo := NewRepository(db)
	ctx := context.Background()

	deckID := mustCreateDeck(t, repo, "Persistent")
	mustCreateCard(t, repo, deckID, "Q", "A")

	db = closeAndReopenDB(t, db, path)
	repo = NewRepository(db)

	deck, err := repo.GetDeckByName(ctx, "Persistent")
	if err != nil || deck == nil {
		t.Fatalf("Expected deck after restart, got %+v, %v", deck, err)
	}
	if len(deck.Cards) != 1 || deck.Cards[0].Answer != "A" {
		t.Errorf("Expected card after restart, got %+v", deck.Cards)
	}
}

// TestMigrationsAreIdempotent verifies that reopening does not fail or drop data
func TestMigrationsAreIdempotent(t *testing.T) {
	db, path := setupTestDBFile(t)
	mustCreateDeck(t, NewRepository(db), "Once")

	db = closeAndReopenDB(t, db, path)
	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Expected migrations to be re-runnable, got %v", err)
	}

	decks, err := NewRepository(db).GetAllDecks(context.Background())
	if err != nil || len(decks) != 1 {
		t.Errorf("Expected 1 deck after re-migration, got %d, %v", len(decks), err)
	}
}

// TestCascadeAfterRestart verifies that foreign keys are enforced on a reopened store
func TestCascadeAfterRestart(t *testing.T) {
	db, path := setupTestDBFile(t)
	repo := NewRepository(db)
	ctx := context.Background()

	deckID := mustCreateDeck(t, repo, "Cascade")
	mustCreateCard(t, repo, deckID, "Q", "A")

	db = closeAndReopenDB(t, db, path)
	repo = NewRepository(db)

	if err := repo.DeleteDeck(ctx, deckID); err != nil {
		t.Fatalf("Failed to delete deck: %v", err)
	}
	count, err := repo.CountCards(ctx, deckID)
	if err != nil || count != 0 {
		t.Errorf("Expected cascade after restart, got %d cards, %v", count, err)
	}
}

func TestInitDB_EmptyPath(t *testing.T) {
	if _, err := InitDB(context.Background(), Options{}); err == nil {
		t.Error("Expected error for empty path")
	}
}
