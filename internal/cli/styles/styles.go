package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/flashquiz/internal/config"
	"github.com/thenoetrevino/flashquiz/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "ID:", "Question:"
	ValueStyle    lipgloss.Style

	// Feedback styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.WarningFg))
}

// RenderDeckLine renders a deck as "ID: 1, Name: Capitals"
func RenderDeckLine(deck models.Deck) string {
	return fmt.Sprintf("%s %d, %s %s",
		LabelStyle.Render("ID:"), deck.ID,
		LabelStyle.Render("Name:"), ValueStyle.Render(deck.Name))
}

// RenderCardLine renders a card as "ID: 1, Question: France?, Answer: Paris"
func RenderCardLine(card models.Card) string {
	return fmt.Sprintf("%s %d, %s %s, %s %s",
		LabelStyle.Render("ID:"), card.ID,
		LabelStyle.Render("Question:"), ValueStyle.Render(card.Question),
		LabelStyle.Render("Answer:"), ValueStyle.Render(card.Answer))
}
