package card

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/models"
	cardservice "github.com/thenoetrevino/flashquiz/internal/services/card"
)

// UpdateCmd returns the card update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a card's question and answer",
		Long: `Replace both the question and the answer of a card. The card keeps its ID and deck.

Examples:
  flashquiz card update --id=1 --question="France capital?" --answer="Paris"
`,
		RunE: runUpdate,
	}

	cmd.Flags().Int64("id", 0, "Card ID (required)")
	cmd.Flags().String("question", "", "New question (required)")
	cmd.Flags().String("answer", "", "New answer (required)")
	for _, name := range []string{"id", "question", "answer"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	cardID, _ := cmd.Flags().GetInt64("id")
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

	// The service treats unknown IDs as a no-op; the command reports them
	existing, err := cliInstance.App.CardService.GetCardByID(ctx, cardID)
	if err != nil {
		return formatter.Fail("CARD_FETCH_ERROR", err)
	}
	if existing == nil {
		return formatter.Fail("CARD_NOT_FOUND", &models.NotFoundError{Entity: "card", ID: cardID})
	}

	err = cliInstance.App.CardService.UpdateCard(ctx, cardservice.UpdateCardRequest{
		ID:       cardID,
		Question: question,
		Answer:   answer,
	})
	if err != nil {
		return formatter.Fail("CARD_UPDATE_ERROR", err)
	}

	updated := models.Card{ID: cardID, DeckID: existing.DeckID, Question: question, Answer: answer}
	if formatter.Quiet {
		return formatter.Success(updated)
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"card": updated})
	}

	formatter.Printf("✓ Card %d updated successfully\n", cardID)
	return nil
}
