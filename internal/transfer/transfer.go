package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/flashquiz/internal/models"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Export writes decks to path, picking the format from its extension.
// The file is written to a temp sibling first and renamed into place.
func Export(path string, decks []models.Deck) error {
	if path == "" {
		return &models.IOError{Path: path, Err: errors.New("file path cannot be empty")}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, FormatFromPath(path), decks); err != nil {
		return fail("export", path, err)
	}

	temp, err := writeTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*", buf.Bytes())
	if err != nil {
		return fail("export", path, err)
	}
	if err := os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return fail("export", path, err)
	}

	slog.Info("decks exported", "path", path, "decks", len(decks))
	return nil
}

// Encode serializes decks to w
func Encode(w io.Writer, format Format, decks []models.Deck) error {
	docs := fromDecks(decks)
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

// Import reads decks from path. Any read, parse or schema failure yields
// nil decks and an *models.IOError.
func Import(path string) ([]models.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fail("import", path, err)
	}
	defer func() { _ = f.Close() }()

	decks, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fail("import", path, err)
	}

	slog.Info("decks imported", "path", path, "decks", len(decks))
	return decks, nil
}

// Decode parses and schema-checks a document from r
func Decode(r io.Reader, format Format) ([]models.Deck, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var docs []deckDocument
	switch format {
	case FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		if err := validateDocument(gojsonschema.NewGoLoader(raw)); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		if !json.Valid(data) {
			return nil, errors.New("malformed json document")
		}
		if err := validateDocument(gojsonschema.NewBytesLoader(data)); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	}
	return toDecks(docs), nil
}

func fail(op, path string, err error) error {
	slog.Error(op+" failed", "path", path, "error", err)
	return &models.IOError{Path: path, Err: err}
}

// writeTemp writes data to a new synced file in dir and returns its name.
// The file is removed again if any step fails.
func writeTemp(dir, pattern string, data []byte) (name string, err error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if err := f.Chmod(0o644); err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		return "", err
	}
	if err := f.Sync(); err != nil {
		return "", err
	}
	return f.Name(), nil
}
