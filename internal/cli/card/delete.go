package card

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/models"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a card",
		RunE:  runDelete,
	}

	cmd.Flags().Int64("id", 0, "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	cardID, _ := cmd.Flags().GetInt64("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	existing, err := cliInstance.App.CardService.GetCardByID(ctx, cardID)
	if err != nil {
		return formatter.Fail("CARD_FETCH_ERROR", err)
	}
	if existing == nil {
		return formatter.Fail("CARD_NOT_FOUND", &models.NotFoundError{Entity: "card", ID: cardID})
	}

	if err := cliInstance.App.CardService.DeleteCard(ctx, cardID); err != nil {
		return formatter.Fail("DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"card_id": cardID})
	}

	formatter.Printf("✓ Card %d deleted successfully\n", cardID)
	return nil
}
