// Package transfer holds the export and import commands
//
// e.g., flashquiz export --file decks.json
package transfer

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/transfer"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every deck and card to a file",
		Long: `Write every deck, with its cards, to a JSON document.
A path ending in .yaml or .yml is written as YAML instead.

Examples:
  flashquiz export --file=decks.json
  flashquiz export --file=backup.yaml --json
`,
		RunE: runExport,
	}

	cmd.Flags().String("file", "", "Destination path (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	path, _ := cmd.Flags().GetString("file")

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
	if err := transfer.Export(path, decks); err != nil {
		return formatter.Fail("EXPORT_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"file": path, "decks": len(decks)})
	}

	formatter.Printf("✓ Exported %d decks to %s\n", len(decks), path)
	return nil
}
