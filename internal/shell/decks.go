package shell

import (
	"context"

	"github.com/thenoetrevino/flashquiz/internal/cli/styles"
	"github.com/thenoetrevino/flashquiz/internal/models"
	cardservice "github.com/thenoetrevino/flashquiz/internal/services/card"
	deckservice "github.com/thenoetrevino/flashquiz/internal/services/deck"
)

func (s *Shell) manageDecks(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.heading("Deck Management:")
		s.println("1. Create Deck")
		s.println("2. List Decks")
		s.println("3. Select Deck for Card Management")
		s.println("4. Delete Deck")
		s.println("5. Back")

		choice, err := s.promptInt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.createDeck(ctx)
		case 2:
			s.listDecks(ctx)
		case 3:
			var deck *models.Deck
			if deck, err = s.selectDeck(ctx); err == nil && deck != nil {
				err = s.manageCards(ctx, *deck)
			}
		case 4:
			err = s.deleteDeck(ctx)
		case 5:
			return nil
		default:
			s.warning("Invalid choice. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) createDeck(ctx context.Context) error {
	name, err := s.promptText("Enter deck name: ")
	if err != nil {
		return err
	}
	if _, err := s.app.DeckService.CreateDeck(ctx, deckservice.CreateDeckRequest{Name: name}); err != nil {
		s.failure("Error creating deck: %s", describe(err))
		return nil
	}
	s.success("Deck created successfully.")
	return nil
}

func (s *Shell) listDecks(ctx context.Context) {
	decks, err := s.app.DeckService.GetAllDecks(ctx)
	if err != nil {
		s.failure("Error loading decks: %s", describe(err))
		return
	}
	if len(decks) == 0 {
		s.note("No decks available.")
		return
	}
	s.println("Available Decks:")
	for _, d := range decks {
		s.println(styles.RenderDeckLine(d))
	}
}

// selectDeck lists decks and asks for an ID. A nil deck means the user was
// already told it could not be found.
func (s *Shell) selectDeck(ctx context.Context) (*models.Deck, error) {
	s.listDecks(ctx)
	id, err := s.promptInt("Enter deck ID: ")
	if err != nil {
		return nil, err
	}

	deck, err := s.app.DeckService.GetDeckByID(ctx, id)
	if err != nil {
		s.failure("Error loading deck: %s", describe(err))
		return nil, nil
	}
	if deck == nil {
		s.warning("Deck not found.")
		return nil, nil
	}
	return deck, nil
}

func (s *Shell) deleteDeck(ctx context.Context) error {
	deck, err := s.selectDeck(ctx)
	if err != nil || deck == nil {
		return err
	}
	if err := s.app.DeckService.DeleteDeck(ctx, deck.ID); err != nil {
		s.failure("Error deleting deck: %s", describe(err))
		return nil
	}
	s.success("Deck deleted successfully.")
	return nil
}

func (s *Shell) manageCards(ctx context.Context, deck models.Deck) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.heading("Card Management for Deck: " + deck.Name)
		s.println("1. Add Card")
		s.println("2. List Cards")
		s.println("3. Edit Card")
		s.println("4. Delete Card")
		s.println("5. Back")

		choice, err := s.promptInt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.addCard(ctx, deck)
		case 2:
			s.listCards(ctx, deck)
		case 3:
			err = s.editCard(ctx, deck)
		case 4:
			err = s.deleteCard(ctx, deck)
		case 5:
			return nil
		default:
			s.warning("Invalid choice. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) addCard(ctx context.Context, deck models.Deck) error {
	question, err := s.promptText("Enter question: ")
	if err != nil {
		return err
	}
	answer, err := s.promptText("Enter answer: ")
	if err != nil {
		return err
	}

	_, err = s.app.CardService.AddCard(ctx, cardservice.AddCardRequest{
		DeckID:   deck.ID,
		Question: question,
		Answer:   answer,
	})
	if err != nil {
		s.failure("Error adding card: %s", describe(err))
		return nil
	}
	s.success("Card added successfully.")
	return nil
}

func (s *Shell) listCards(ctx context.Context, deck models.Deck) {
	cards, err := s.app.CardService.GetCardsForDeck(ctx, deck.ID)
	if err != nil {
		s.failure("Error loading cards: %s", describe(err))
		return
	}
	if len(cards) == 0 {
		s.note("No cards in this deck.")
		return
	}
	s.println("Cards in Deck:")
	for _, c := range cards {
		s.println(styles.RenderCardLine(c))
	}
}

// pickCard lists the deck's cards and asks for one of them by ID.
// Cards of other decks are reported as not found.
func (s *Shell) pickCard(ctx context.Context, deck models.Deck, prompt string) (*models.Card, error) {
	s.listCards(ctx, deck)
	id, err := s.promptInt(prompt)
	if err != nil {
		return nil, err
	}

	card, err := s.app.CardService.GetCardByID(ctx, id)
	if err != nil {
		s.failure("Error loading card: %s", describe(err))
		return nil, nil
	}
	if card == nil || card.DeckID != deck.ID {
		s.warning("Card not found.")
		return nil, nil
	}
	return card, nil
}

func (s *Shell) editCard(ctx context.Context, deck models.Deck) error {
	card, err := s.pickCard(ctx, deck, "Enter card ID to edit: ")
	if err != nil || card == nil {
		return err
	}
	question, err := s.promptText("Enter new question: ")
	if err != nil {
		return err
	}
	answer, err := s.promptText("Enter new answer: ")
	if err != nil {
		return err
	}

	err = s.app.CardService.UpdateCard(ctx, cardservice.UpdateCardRequest{
		ID:       card.ID,
		Question: question,
		Answer:   answer,
	})
	if err != nil {
		s.failure("Error updating card: %s", describe(err))
		return nil
	}
	s.success("Card updated successfully.")
	return nil
}

func (s *Shell) deleteCard(ctx context.Context, deck models.Deck) error {
	card, err := s.pickCard(ctx, deck, "Enter card ID to delete: ")
	if err != nil || card == nil {
		return err
	}
	if err := s.app.CardService.DeleteCard(ctx, card.ID); err != nil {
		s.failure("Error deleting card: %s", describe(err))
		return nil
	}
	s.success("Card deleted successfully.")
	return nil
}
