// Package validation wraps go-playground/validator with the rules shared by
// the deck and card services.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/flashquiz/internal/models"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the notblank rule registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// notblank rejects strings that are empty after trimming whitespace
		if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return NotBlank(fl.Field().String())
		}); err != nil {
			panic(err)
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("field"); name != "" {
				return name
			}
			return strings.ToLower(f.Name)
		})
		instance = v
	})
	return instance
}

// Struct validates req and reports the first failing field as a ValidationError.
func Struct(req any) error {
	err := Validator().Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &models.ValidationError{Field: fieldErrs[0].Field()}
	}
	return err
}

// NotBlank reports whether s has any non-whitespace content
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
