// Package deck holds all cli commands related to decks
//
// e.g., flashquiz deck ...
package deck

import (
	"github.com/spf13/cobra"
)

// DeckCmd returns the deck parent command
func DeckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage decks",
		Long:  "Create, list, show, and delete flashcard decks.",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
