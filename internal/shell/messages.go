package shell

import (
	"errors"

	"github.com/thenoetrevino/flashquiz/internal/models"
)

// describe turns a service error into the text shown after "Error ...: "
func describe(err error) string {
	var storageErr *models.StorageError
	switch {
	case errors.As(err, &storageErr):
		return "storage failure while trying to " + storageErr.Op
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrDuplicateName),
		errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrIO):
		return err.Error()
	default:
		return "unexpected error: " + err.Error()
	}
}
