package shell

import (
	"context"
	"strings"

	"github.com/thenoetrevino/flashquiz/internal/cli/styles"
)

// study quizzes the user on every card of one deck in insertion order.
// Answers match ignoring case and surrounding whitespace.
func (s *Shell) study(ctx context.Context) error {
	deck, err := s.selectDeck(ctx)
	if err != nil || deck == nil {
		return err
	}
	if len(deck.Cards) == 0 {
		s.note("No cards in this deck to study.")
		return nil
	}

	s.heading("Study Mode for Deck: " + deck.Name)
	correct := 0
	for _, card := range deck.Cards {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println(styles.LabelStyle.Render("Question:") + " " + card.Question)
		answer, err := s.promptText("Your answer is: ")
		if err != nil {
			return err
		}
		if strings.EqualFold(answer, strings.TrimSpace(card.Answer)) {
			correct++
			s.success("Correct!")
		} else {
			s.failure("Incorrect. Correct answer: %s", card.Answer)
		}
		s.println()
	}

	s.println("Study session completed.")
	s.printf("Score: %d/%d\n", correct, len(deck.Cards))
	return nil
}
