package deck

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	deckservice "github.com/thenoetrevino/flashquiz/internal/services/deck"
)

// CreateCmd returns the deck create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new deck",
		Long: `Create a new, empty deck. Deck names must be unique.

Examples:
  # Simple deck (human-readable output)
  flashquiz deck create --name="Capitals"

  # Quiet mode for bash capture
  DECK_ID=$(flashquiz deck create --name="Capitals" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Deck name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	name, _ := cmd.Flags().GetString("name")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	deck, err := cliInstance.App.DeckService.CreateDeck(ctx, deckservice.CreateDeckRequest{Name: name})
	if err != nil {
		return formatter.Fail("DECK_CREATE_ERROR", err)
	}

	if formatter.Quiet {
		return formatter.Success(deck)
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{
			"deck": map[string]any{"id": deck.ID, "name": deck.Name},
		})
	}

	formatter.Printf("✓ Deck '%s' created successfully (ID: %d)\n", deck.Name, deck.ID)
	return nil
}
