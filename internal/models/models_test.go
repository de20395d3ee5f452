package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"validation", &ValidationError{Field: "name"}, ErrValidation, "name cannot be empty"},
		{"duplicate", &DuplicateNameError{Name: "Capitals"}, ErrDuplicateName, `deck "Capitals" already exists`},
		{"not found", &NotFoundError{Entity: "deck", ID: 7}, ErrNotFound, "deck 7 not found"},
		{"storage", &StorageError{Op: "insert deck", Err: errors.New("disk full")}, ErrStorage, "failed to insert deck: disk full"},
		{"io", &IOError{Path: "decks.json", Err: errors.New("no such file")}, ErrIO, "decks.json: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("Expected %v to match sentinel %v", tt.err, tt.sentinel)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestErrorsDoNotCrossMatch(t *testing.T) {
	err := &ValidationError{Field: "question"}
	if errors.Is(err, ErrDuplicateName) {
		t.Error("ValidationError should not match ErrDuplicateName")
	}
	if errors.Is(err, ErrStorage) {
		t.Error("ValidationError should not match ErrStorage")
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("locked")
	err := &StorageError{Op: "delete deck", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("Expected StorageError to unwrap to its cause")
	}
}

func TestDeckCardCount(t *testing.T) {
	deck := Deck{ID: 1, Name: "Capitals", Cards: []Card{{ID: 1}, {ID: 2}}}
	if deck.CardCount() != 2 {
		t.Errorf("Expected 2 cards, got %d", deck.CardCount())
	}
	if deck.GetID() != 1 {
		t.Errorf("Expected ID 1, got %d", deck.GetID())
	}
}
