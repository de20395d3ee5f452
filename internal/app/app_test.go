package app

import (
	"context"
	"testing"

	"github.com/thenoetrevino/flashquiz/internal/database"
	deckservice "github.com/thenoetrevino/flashquiz/internal/services/deck"
)

func setupTestDB(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.Options{Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

func TestNew(t *testing.T) {
	db, err := database.InitDB(context.Background(), database.Options{Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	app := New(db)
	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.DeckService == nil {
		t.Error("Expected DeckService to be initialized")
	}
	if app.CardService == nil {
		t.Error("Expected CardService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected repository to be initialized")
	}

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
	if err := db.PingContext(context.Background()); err == nil {
		t.Error("Expected database to be closed after app.Close")
	}
}

func TestNew_WithDataStore(t *testing.T) {
	repo := setupTestDB(t)
	app := New(nil, WithDataStore(repo))

	ctx := context.Background()
	if _, err := app.DeckService.CreateDeck(ctx, deckservice.CreateDeckRequest{Name: "Shared"}); err != nil {
		t.Fatalf("CreateDeck failed: %v", err)
	}

	deck, err := repo.GetDeckByName(ctx, "Shared")
	if err != nil {
		t.Fatalf("GetDeckByName failed: %v", err)
	}
	if deck == nil {
		t.Fatal("Expected deck created through the app to be visible in the repository")
	}

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close without a db handle to succeed, got: %v", err)
	}
}
