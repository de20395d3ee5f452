package deck

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
)

// ListCmd returns the deck list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all decks",
		Long:  "List all decks in ID order with their card counts.",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	decks, err := cliInstance.App.DeckService.GetAllDecks(ctx)
	if err != nil {
		return formatter.Fail("DECK_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		for _, d := range decks {
			if err := formatter.Success(d); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		items := make([]map[string]any, 0, len(decks))
		for _, d := range decks {
			items = append(items, map[string]any{"id": d.ID, "name": d.Name, "card_count": d.CardCount()})
		}
		return formatter.JSONSuccess(map[string]any{"decks": items})
	}

	if len(decks) == 0 {
		formatter.Println("No decks found")
		return nil
	}

	formatter.Printf("Found %d decks:\n\n", len(decks))
	for _, d := range decks {
		formatter.Printf("  [%d] %s (%d cards)\n", d.ID, d.Name, d.CardCount())
	}
	return nil
}
