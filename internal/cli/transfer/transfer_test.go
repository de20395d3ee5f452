package transfer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/testutil"
	"github.com/thenoetrevino/flashquiz/internal/testutil/cli"
)

func TestExportThenImport(t *testing.T) {
	t.Parallel()
	srcDB, srcApp := cli.SetupCLITest(t)
	deckID := testutil.CreateTestDeck(t, srcDB, "Capitals")
	testutil.CreateTestCard(t, srcDB, deckID, "France?", "Paris")
	testutil.CreateTestCard(t, srcDB, deckID, "Japan?", "Tokyo")

	path := filepath.Join(t.TempDir(), "decks.json")
	output, err := cli.ExecuteCLICommand(t, srcApp, ExportCmd(), []string{"--file", path})
	require.NoError(t, err)
	assert.Contains(t, output, "Exported 1 decks to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"question": "France?"`)

	dstDB, dstApp := cli.SetupCLITest(t)
	output, err = cli.ExecuteCLICommand(t, dstApp, ImportCmd(), []string{"--file", path})
	require.NoError(t, err)
	assert.Contains(t, output, "Decks created: 1, decks reused: 0, cards added: 2")
	assert.Equal(t, 2, testutil.CountRows(t, dstDB, "cards"))

	t.Run("second import reuses the deck and duplicates cards", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, dstApp, ImportCmd(), []string{"--file", path, "--json"})
		require.NoError(t, err)
		assert.Contains(t, output, `"decks_reused":1`)
		assert.Contains(t, output, `"cards_added":2`)
		assert.Equal(t, 1, testutil.CountRows(t, dstDB, "decks"))
		assert.Equal(t, 4, testutil.CountRows(t, dstDB, "cards"))
	})
}

func TestExport_Quiet(t *testing.T) {
	t.Parallel()
	_, app := cli.SetupCLITest(t)
	path := filepath.Join(t.TempDir(), "empty.json")

	output, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{"--file", path, "--quiet"})
	require.NoError(t, err)
	assert.Empty(t, output)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestExport_UnwritablePath(t *testing.T) {
	t.Parallel()
	_, app := cli.SetupCLITest(t)
	path := filepath.Join(t.TempDir(), "missing", "decks.json")

	res, err := cli.ExecuteCLICommandWithInput(t, context.Background(), app, ExportCmd(), []string{"--file", path}, "")
	assert.Equal(t, clipkg.ExitDataErr, clipkg.ExitCode(err))
	assert.Contains(t, res.Stderr, "Error:")
}

func TestImport_Failures(t *testing.T) {
	t.Parallel()
	db, app := cli.SetupCLITest(t)
	dir := t.TempDir()

	t.Run("malformed file changes nothing", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"name":`), 0o644))

		res, err := cli.ExecuteCLICommandWithInput(t, context.Background(), app, ImportCmd(), []string{"--file", path}, "")
		assert.Equal(t, clipkg.ExitDataErr, clipkg.ExitCode(err))
		assert.Contains(t, res.Stderr, "Suggestion:")
		assert.Equal(t, 0, testutil.CountRows(t, db, "decks"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ImportCmd(), []string{"--file", filepath.Join(dir, "nope.json")})
		assert.Equal(t, clipkg.ExitDataErr, clipkg.ExitCode(err))
	})

	t.Run("blank entries are reported and the rest merged", func(t *testing.T) {
		path := filepath.Join(dir, "partial.json")
		doc := `[
  {"name": "  ", "cards": [{"question": "q", "answer": "a"}]},
  {"name": "Rivers", "cards": [
    {"question": "Longest?", "answer": "Nile"},
    {"question": "", "answer": "none"}
  ]}
]`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		output, err := cli.ExecuteCLICommand(t, app, ImportCmd(), []string{"--file", path})
		assert.Equal(t, clipkg.ExitDataErr, clipkg.ExitCode(err))
		assert.Contains(t, output, "Error importing deck")
		assert.Contains(t, output, `Error importing card "" into deck Rivers`)
		assert.Contains(t, output, "Decks created: 1, decks reused: 0, cards added: 1")
		assert.Equal(t, 1, testutil.CountRows(t, db, "cards"))
	})
}
