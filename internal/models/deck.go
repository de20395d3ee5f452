package models

// Deck is a named collection of cards.
// Values returned by the storage layer are snapshots; changing a field or a
// card in Cards has no effect on what is stored.
type Deck struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// GetID returns the deck ID (used by quiet output mode)
func (d Deck) GetID() int64 {
	return d.ID
}

// CardCount returns the number of cards loaded with the deck
func (d Deck) CardCount() int {
	return len(d.Cards)
}
