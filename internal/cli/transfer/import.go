package transfer

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/transfer"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Merge decks and cards from a file",
		Long: `Merge an exported document into the store.

Decks are matched by name and created when missing; every card in the file
is added as a new card. Importing the same file twice duplicates its cards.

Examples:
  flashquiz import --file=decks.json
`,
		RunE: runImport,
	}

	cmd.Flags().String("file", "", "Source path (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	path, _ := cmd.Flags().GetString("file")

	decks, err := transfer.Import(path)
	if err != nil {
		return formatter.FailWithSuggestion("IMPORT_ERROR", err,
			"The file must hold a JSON array of decks, as written by flashquiz export")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	report := transfer.Merge(ctx, cliInstance.App.DeckService, cliInstance.App.CardService, decks)

	if formatter.JSON {
		deckFailures := make([]map[string]string, 0, len(report.DeckFailures))
		for _, f := range report.DeckFailures {
			deckFailures = append(deckFailures, map[string]string{"deck": f.Deck, "error": f.Err.Error()})
		}
		cardFailures := make([]map[string]string, 0, len(report.CardFailures))
		for _, f := range report.CardFailures {
			cardFailures = append(cardFailures, map[string]string{
				"deck":     f.Deck,
				"question": f.Question,
				"error":    f.Err.Error(),
			})
		}
		if err := formatter.JSONSuccess(map[string]any{
			"decks_created": report.DecksCreated,
			"decks_reused":  report.DecksReused,
			"cards_added":   report.CardsAdded,
			"deck_failures": deckFailures,
			"card_failures": cardFailures,
		}); err != nil {
			return err
		}
	} else {
		for _, f := range report.DeckFailures {
			formatter.Printf("Error importing deck %s: %s\n", f.Deck, f.Err)
		}
		for _, f := range report.CardFailures {
			formatter.Printf("Error importing card %q into deck %s: %s\n", f.Question, f.Deck, f.Err)
		}
		formatter.Printf("✓ Decks created: %d, decks reused: %d, cards added: %d\n",
			report.DecksCreated, report.DecksReused, report.CardsAdded)
	}

	if report.Failed() {
		return &cli.CodedError{Code: cli.ExitDataErr}
	}
	return nil
}
