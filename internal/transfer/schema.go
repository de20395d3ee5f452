package transfer

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed deck.schema.json
var schemaBytes []byte

var documentSchema = gojsonschema.NewBytesLoader(schemaBytes)

// validateDocument checks a decoded document against the deck schema
func validateDocument(doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(documentSchema, doc)
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("document does not match deck schema: %s", strings.Join(msgs, "; "))
}
