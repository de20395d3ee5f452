package transfer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/flashquiz/internal/models"
)

func sampleDecks() []models.Deck {
	return []models.Deck{
		{ID: 1, Name: "Capitals", Cards: []models.Card{
			{ID: 1, DeckID: 1, Question: "France?", Answer: "Paris"},
			{ID: 2, DeckID: 1, Question: "Peru?", Answer: "Lima"},
		}},
		{ID: 4, Name: "Empty", Cards: []models.Card{}},
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	tests := map[string]Format{
		"decks.json":     FormatJSON,
		"decks.yaml":     FormatYAML,
		"DECKS.YML":      FormatYAML,
		"decks":          FormatJSON,
		"dir.yaml/decks": FormatJSON,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}

func TestEncode_JSONShape(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, sampleDecks()[:1]))

	want := `[
  {
    "id": 1,
    "name": "Capitals",
    "cards": [
      {
        "id": 1,
        "question": "France?",
        "answer": "Paris"
      },
      {
        "id": 2,
        "question": "Peru?",
        "answer": "Lima"
      }
    ]
  }
]
`
	assert.Equal(t, want, buf.String())
}

func TestExportImport_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"decks.json", "decks.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Export(path, sampleDecks()))

			got, err := Import(path)
			require.NoError(t, err)
			assert.Equal(t, sampleDecks(), got)
		})
	}
}

func TestExport_EmptyList(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Export(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	got, err := Import(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExport_Overwrites(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "decks.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, Export(path, sampleDecks()))
	got, err := Import(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should not be left behind")
}

func TestExport_FileModeAndFailedRename(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "decks.json")
	require.NoError(t, Export(path, sampleDecks()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	// A non-empty directory at the target makes the rename fail
	blocked := filepath.Join(dir, "blocked.json")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "child"), 0o755))
	require.ErrorIs(t, Export(blocked, sampleDecks()), models.ErrIO)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"decks.json", "blocked.json"}, names, "temp files are cleaned up")
}

func TestExport_UnwritableDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "decks.json")

	err := Export(path, sampleDecks())
	require.ErrorIs(t, err, models.ErrIO)

	var ioErr *models.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, path, ioErr.Path)
}

func TestExport_EmptyPath(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, Export("", sampleDecks()), models.ErrIO)
}

func TestImport_Failures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "bad.json", `[{"name": "Capitals",`},
		{"not an array", "obj.json", `{"name": "Capitals"}`},
		{"null document", "null.json", `null`},
		{"deck not an object", "scalar.json", `["Capitals"]`},
		{"cards not a list", "cards.json", `[{"name": "D", "cards": "Q"}]`},
		{"card not an object", "card.json", `[{"name": "D", "cards": [["Q", "A"]]}]`},
		{"malformed yaml", "bad.yaml", "- name: [unclosed\n"},
		{"yaml mapping", "map.yaml", "name: D\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			decks, err := Import(path)
			assert.Nil(t, decks)
			assert.ErrorIs(t, err, models.ErrIO)
		})
	}
}

func TestImport_MissingFile(t *testing.T) {
	t.Parallel()
	decks, err := Import(filepath.Join(t.TempDir(), "nope.json"))
	assert.Nil(t, decks)
	assert.ErrorIs(t, err, models.ErrIO)
}

func TestDecode_NullCardsAndBlankText(t *testing.T) {
	t.Parallel()
	doc := `[{"name": "D", "cards": null}, {"name": " ", "cards": [{"question": "", "answer": "A"}]}]`

	decks, err := Decode(strings.NewReader(doc), FormatJSON)
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Empty(t, decks[0].Cards)
	assert.Equal(t, " ", decks[1].Name)
	require.Len(t, decks[1].Cards, 1)
	assert.Equal(t, "", decks[1].Cards[0].Question)
}

func TestDecode_EntryDefectsAreLeftToMerge(t *testing.T) {
	t.Parallel()
	doc := `[
  {"id": null, "cards": [{"question": "orphan", "answer": "A"}]},
  {"id": 100000000000000000000, "name": null},
  {"id": 1.5, "name": "A", "cards": [
    {"answer": "no question"},
    {"id": null, "question": null, "answer": "null question"},
    {"id": -3, "question": "Q", "answer": null}
  ]},
  {"id": 9, "name": "B", "cards": [{"id": 1e3, "question": "Peru?", "answer": "Lima"}]}
]`

	decks, err := Decode(strings.NewReader(doc), FormatJSON)
	require.NoError(t, err)
	require.Len(t, decks, 4)

	assert.Equal(t, "", decks[0].Name)
	assert.Zero(t, decks[0].ID)
	assert.Equal(t, "", decks[1].Name)
	assert.Zero(t, decks[1].ID)
	assert.Empty(t, decks[1].Cards)

	assert.Zero(t, decks[2].ID)
	require.Len(t, decks[2].Cards, 3)
	assert.Equal(t, "", decks[2].Cards[0].Question)
	assert.Equal(t, "", decks[2].Cards[1].Question)
	assert.Equal(t, "", decks[2].Cards[2].Answer)
	assert.Equal(t, int64(-3), decks[2].Cards[2].ID)

	assert.Equal(t, int64(9), decks[3].ID)
	assert.Equal(t, []models.Card{{ID: 1000, DeckID: 9, Question: "Peru?", Answer: "Lima"}}, decks[3].Cards)
}

func TestDecode_YAMLEntryDefects(t *testing.T) {
	t.Parallel()
	doc := `- id: ~
  name: A
  cards:
    - id: 100000000000000000000
      question: ~
      answer: x
- id: [1]
  name: B
  cards:
    - question: Q
      answer: A
`

	decks, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Zero(t, decks[0].ID)
	require.Len(t, decks[0].Cards, 1)
	assert.Zero(t, decks[0].Cards[0].ID)
	assert.Equal(t, "", decks[0].Cards[0].Question)
	assert.Zero(t, decks[1].ID)
	assert.Equal(t, "B", decks[1].Name)
}
