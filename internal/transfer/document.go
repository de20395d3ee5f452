// Package transfer moves the deck collection in and out of files and merges
// imported decks back into the store by name.
package transfer

import (
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thenoetrevino/flashquiz/internal/models"
	"gopkg.in/yaml.v3"
)

// Format selects the document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON for everything else
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// documentID is an informational id. Import never fails on it: null,
// fractional or out-of-range values decode as zero.
type documentID int64

func (id *documentID) UnmarshalJSON(data []byte) error {
	*id = parseDocumentID(string(data))
	return nil
}

func (id *documentID) UnmarshalYAML(node *yaml.Node) error {
	*id = 0
	if node.Kind == yaml.ScalarNode {
		*id = parseDocumentID(node.Value)
	}
	return nil
}

func parseDocumentID(s string) documentID {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return documentID(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0
	}
	return documentID(f)
}

// deckDocument is one element of the exported array
type deckDocument struct {
	ID    documentID     `json:"id" yaml:"id"`
	Name  string         `json:"name" yaml:"name"`
	Cards []cardDocument `json:"cards" yaml:"cards"`
}

type cardDocument struct {
	ID       documentID `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

func fromDecks(decks []models.Deck) []deckDocument {
	docs := make([]deckDocument, 0, len(decks))
	for _, d := range decks {
		cards := make([]cardDocument, 0, len(d.Cards))
		for _, c := range d.Cards {
			cards = append(cards, cardDocument{ID: documentID(c.ID), Question: c.Question, Answer: c.Answer})
		}
		docs = append(docs, deckDocument{ID: documentID(d.ID), Name: d.Name, Cards: cards})
	}
	return docs
}

func toDecks(docs []deckDocument) []models.Deck {
	decks := make([]models.Deck, 0, len(docs))
	for _, d := range docs {
		cards := make([]models.Card, 0, len(d.Cards))
		for _, c := range d.Cards {
			cards = append(cards, models.Card{ID: int64(c.ID), DeckID: int64(d.ID), Question: c.Question, Answer: c.Answer})
		}
		decks = append(decks, models.Deck{ID: int64(d.ID), Name: d.Name, Cards: cards})
	}
	return decks
}
