package card

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/cli/styles"
	"github.com/thenoetrevino/flashquiz/internal/models"
)

// ListCmd returns the card list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cards of a deck",
		Long:  "List every card of a deck in the order it was added.",
		RunE:  runList,
	}

	cmd.Flags().Int64("deck", 0, "Deck ID (required)")
	if err := cmd.MarkFlagRequired("deck"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	deckID, _ := cmd.Flags().GetInt64("deck")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	deck, err := cliInstance.App.DeckService.GetDeckByID(ctx, deckID)
	if err != nil {
		return formatter.Fail("DECK_FETCH_ERROR", err)
	}
	if deck == nil {
		return formatter.FailWithSuggestion("DECK_NOT_FOUND",
			&models.NotFoundError{Entity: "deck", ID: deckID}, "Run: flashquiz deck list")
	}

	if formatter.Quiet {
		for _, c := range deck.Cards {
			if err := formatter.Success(c); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"deck_id": deck.ID, "cards": deck.Cards})
	}

	if len(deck.Cards) == 0 {
		formatter.Println("No cards in this deck.")
		return nil
	}
	formatter.Println(styles.TitleStyle.Render("Cards in Deck: " + deck.Name))
	for _, c := range deck.Cards {
		formatter.Println(styles.RenderCardLine(c))
	}
	return nil
}
