package models

// Card is a question/answer pair belonging to exactly one deck
type Card struct {
	ID       int64  `json:"id"`
	DeckID   int64  `json:"deck_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GetID returns the card ID (used by quiet output mode)
func (c Card) GetID() int64 {
	return c.ID
}
