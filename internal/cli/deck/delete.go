package deck

import (
	"bufio"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/models"
)

// DeleteCmd returns the deck delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a deck and all of its cards",
		Long:  "Delete a deck by ID (requires confirmation unless --force or --quiet).",
		RunE:  runDelete,
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Deck ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	deckID, _ := cmd.Flags().GetInt64("id")
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	// Get deck details for confirmation
	deck, err := cliInstance.App.DeckService.GetDeckByID(ctx, deckID)
	if err != nil {
		return formatter.Fail("DECK_FETCH_ERROR", err)
	}
	if deck == nil {
		return formatter.Fail("DECK_NOT_FOUND", &models.NotFoundError{Entity: "deck", ID: deckID})
	}

	// Ask for confirmation unless force, quiet or json mode
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete deck #%d: '%s' and its %d cards? (y/N): ", deck.ID, deck.Name, deck.CardCount())
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.DeckService.DeleteDeck(ctx, deck.ID); err != nil {
		return formatter.Fail("DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"deck_id": deck.ID})
	}

	formatter.Printf("✓ Deck %d deleted successfully\n", deck.ID)
	return nil
}
