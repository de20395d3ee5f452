package shell

import (
	"context"

	"github.com/thenoetrevino/flashquiz/internal/transfer"
)

func (s *Shell) exportDecks(ctx context.Context) error {
	path, err := s.promptText("Enter file path for export (for example: decks.json): ")
	if err != nil {
		return err
	}

	decks, err := s.app.DeckService.GetAllDecks(ctx)
	if err != nil {
		s.failure("Export failed: %s", describe(err))
		return nil
	}
	if err := transfer.Export(path, decks); err != nil {
		s.failure("Export failed: %s", describe(err))
		return nil
	}
	s.success("Export completed.")
	return nil
}

func (s *Shell) importDecks(ctx context.Context) error {
	path, err := s.promptText("Enter file path for import (for example: decks.json): ")
	if err != nil {
		return err
	}

	decks, err := transfer.Import(path)
	if err != nil {
		s.failure("Import failed.")
		return nil
	}

	report := transfer.Merge(ctx, s.app.DeckService, s.app.CardService, decks)
	for _, f := range report.DeckFailures {
		s.failure("Error importing deck %s: %s", f.Deck, describe(f.Err))
	}
	for _, f := range report.CardFailures {
		s.failure("Error importing card %q into deck %s: %s", f.Question, f.Deck, describe(f.Err))
	}
	s.printf("Decks created: %d, decks reused: %d, cards added: %d\n",
		report.DecksCreated, report.DecksReused, report.CardsAdded)
	s.success("Import completed.")
	return nil
}
