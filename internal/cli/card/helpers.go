package card

import (
	"errors"

	"github.com/thenoetrevino/flashquiz/internal/models"
)

// suggestionFor returns a hint for errors the user can fix from the shell
func suggestionFor(err error) string {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return "Run: flashquiz deck list"
	case errors.Is(err, models.ErrValidation):
		return "Both --question and --answer need non-blank text"
	default:
		return ""
	}
}
