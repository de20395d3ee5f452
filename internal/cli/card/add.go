package card

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	cardservice "github.com/thenoetrevino/flashquiz/internal/services/card"
)

// AddCmd returns the card add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card to a deck",
		Long: `Add a question/answer card to an existing deck.

Examples:
  flashquiz card add --deck=1 --question="France?" --answer="Paris"

  # Quiet mode for bash capture
  CARD_ID=$(flashquiz card add --deck=1 --question="Peru?" --answer="Lima" --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().Int64("deck", 0, "Deck ID (required)")
	cmd.Flags().String("question", "", "Card question (required)")
	cmd.Flags().String("answer", "", "Card answer (required)")
	for _, name := range []string{"deck", "question", "answer"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	deckID, _ := cmd.Flags().GetInt64("deck")
	question, _ := cmd.Flags().GetString("question")
	answer, _ := cmd.Flags().GetString("answer")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	card, err := cliInstance.App.CardService.AddCard(ctx, cardservice.AddCardRequest{
		DeckID:   deckID,
		Question: question,
		Answer:   answer,
	})
	if err != nil {
		return formatter.FailWithSuggestion("CARD_CREATE_ERROR", err, suggestionFor(err))
	}

	if formatter.Quiet {
		return formatter.Success(card)
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"card": card})
	}

	formatter.Printf("✓ Card %d added to deck %d\n", card.ID, card.DeckID)
	return nil
}
