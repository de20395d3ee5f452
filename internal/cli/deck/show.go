package deck

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/models"
)

// ShowCmd returns the deck show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a deck and its cards",
		Long:  "Display a deck with every card, rendered as a markdown table.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int64("id", 0, "Deck ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd, "Minimal output (card IDs only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	// Parse deck ID from positional arg or flag
	deckID, _ := cmd.Flags().GetInt64("id")
	if len(args) > 0 {
		// Unparseable IDs fall through to the positive-integer check
		deckID, _ = strconv.ParseInt(args[0], 10, 64)
	}
	if deckID <= 0 {
		return formatter.FailWithSuggestion("INVALID_DECK_ID",
			cli.UsageError("deck ID must be a positive integer"),
			"Usage: flashquiz deck show <id> or flashquiz deck show --id=<id>")
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

	deck, err := cliInstance.App.DeckService.GetDeckByID(ctx, deckID)
	if err != nil {
		return formatter.Fail("DECK_FETCH_ERROR", err)
	}
	if deck == nil {
		return formatter.FailWithSuggestion("DECK_NOT_FOUND",
			&models.NotFoundError{Entity: "deck", ID: deckID},
			"Run: flashquiz deck list")
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
		return formatter.JSONSuccess(map[string]any{"deck": deck})
	}

	return outputHuman(cmd.OutOrStdout(), deck)
}

// deckMarkdown lays a deck out as a heading plus a card table
func deckMarkdown(deck *models.Deck) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", deck.Name)
	fmt.Fprintf(&b, "Deck ID %d, %d cards.\n\n", deck.ID, deck.CardCount())
	if len(deck.Cards) == 0 {
		b.WriteString("_No cards in this deck._\n")
		return b.String()
	}

	b.WriteString("| ID | Question | Answer |\n|---:|---|---|\n")
	cell := strings.NewReplacer("|", `\|`, "\n", " ")
	for _, c := range deck.Cards {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", c.ID, cell.Replace(c.Question), cell.Replace(c.Answer))
	}
	return b.String()
}

func outputHuman(w io.Writer, deck *models.Deck) error {
	style := glamour.WithStandardStyle("notty")
	if f, ok := w.(*os.File); ok && term.IsTerminal(f.Fd()) {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(deckMarkdown(deck))
	if err != nil {
		return fmt.Errorf("failed to render deck: %w", err)
	}
	_, err = fmt.Fprint(w, rendered)
	return err
}
