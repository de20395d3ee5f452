package card

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/testutil"
	"github.com/thenoetrevino/flashquiz/internal/testutil/cli"
)

func TestAddCard(t *testing.T) {
	t.Parallel()
	db, app := cli.SetupCLITest(t)
	deckID := testutil.CreateTestDeck(t, db, "Capitals")

	t.Run("quiet prints the new id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--deck", "1", "--question", "France?", "--answer", "Paris", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "1\n", output)
	})

	t.Run("json", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--deck", "1", "--question", "Japan?", "--answer", "Tokyo", "--json"})
		require.NoError(t, err)

		var got struct {
			Success bool `json:"success"`
			Card    struct {
				ID       int64  `json:"id"`
				DeckID   int64  `json:"deck_id"`
				Question string `json:"question"`
				Answer   string `json:"answer"`
			} `json:"card"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &got))
		assert.True(t, got.Success)
		assert.Equal(t, int64(2), got.Card.ID)
		assert.Equal(t, deckID, got.Card.DeckID)
		assert.Equal(t, "Tokyo", got.Card.Answer)
	})

	t.Run("human", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(),
			[]string{"--deck", "1", "--question", "Peru?", "--answer", "Lima"})
		require.NoError(t, err)
		assert.Contains(t, output, "Card 3 added to deck 1")
	})

	assert.Equal(t, 3, testutil.CountRows(t, db, "cards"))
}

func TestAddCard_Negative(t *testing.T) {
	t.Parallel()
	db, app := cli.SetupCLITest(t)
	testutil.CreateTestDeck(t, db, "Capitals")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "blank question",
			args:       []string{"--deck", "1", "--question", "  ", "--answer", "Paris"},
			wantCode:   clipkg.ExitValidation,
			wantStderr: "question cannot be empty",
		},
		{
			name:       "blank answer",
			args:       []string{"--deck", "1", "--question", "France?", "--answer", ""},
			wantCode:   clipkg.ExitValidation,
			wantStderr: "answer cannot be empty",
		},
		{
			name:       "unknown deck",
			args:       []string{"--deck", "99", "--question", "France?", "--answer", "Paris"},
			wantCode:   clipkg.ExitNotFound,
			wantStderr: "deck 99 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := cli.ExecuteCLICommandWithInput(t, context.Background(), app, AddCmd(), tt.args, "")
			assert.Equal(t, tt.wantCode, clipkg.ExitCode(err))
			assert.Contains(t, res.Stderr, tt.wantStderr)
		})
	}

	assert.Equal(t, 0, testutil.CountRows(t, db, "cards"))
}

func TestListCards(t *testing.T) {
	t.Parallel()
	db, app := cli.SetupCLITest(t)
	deckID := testutil.CreateTestDeck(t, db, "Capitals")
	testutil.CreateTestDeck(t, db, "Empty")
	testutil.CreateTestCard(t, db, deckID, "France?", "Paris")
	testutil.CreateTestCard(t, db, deckID, "Japan?", "Tokyo")

	t.Run("human", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--deck", "1"})
		require.NoError(t, err)
		output = ansi.Strip(output)
		assert.Contains(t, output, "Capitals")
		assert.Contains(t, output, "ID: 1, Question: France?, Answer: Paris")
		assert.Contains(t, output, "ID: 2, Question: Japan?, Answer: Tokyo")
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--deck", "1", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "1\n2\n", output)
	})

	t.Run("json keeps empty decks as an empty list", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--deck", "2", "--json"})
		require.NoError(t, err)
		assert.Contains(t, output, `"cards":[]`)
		assert.Contains(t, output, `"deck_id":2`)
	})

	t.Run("empty deck", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--deck", "2"})
		require.NoError(t, err)
		assert.Contains(t, output, "No cards in this deck.")
	})

	t.Run("unknown deck", func(t *testing.T) {
		res, err := cli.ExecuteCLICommandWithInput(t, context.Background(), app, ListCmd(), []string{"--deck", "42"}, "")
		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
		assert.Contains(t, res.Stderr, "Suggestion: Run: flashquiz deck list")
	})
}

func TestUpdateCard(t *testing.T) {
	t.Parallel()
	db, app := cli.SetupCLITest(t)
	deckID := testutil.CreateTestDeck(t, db, "Capitals")
	cardID := testutil.CreateTestCard(t, db, deckID, "France?", "Paris")

	output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(),
		[]string{"--id", "1", "--question", "France capital?", "--answer", "PARIS"})
	require.NoError(t, err)
	assert.Contains(t, output, "Card 1 updated successfully")

	card, err := app.CardService.GetCardByID(context.Background(), cardID)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, "France capital?", card.Question)
	assert.Equal(t, "PARIS", card.Answer)
	assert.Equal(t, deckID, card.DeckID)

	t.Run("blank text keeps the stored card", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", "1", "--question", "", "--answer", "x"})
		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))

		card, err := app.CardService.GetCardByID(context.Background(), cardID)
		require.NoError(t, err)
		assert.Equal(t, "France capital?", card.Question)
	})

	t.Run("unknown card", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(),
			[]string{"--id", "9", "--question", "q", "--answer", "a"})
		assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	})
}

func TestDeleteCard(t *testing.T) {
	t.Parallel()
	db, app := cli.SetupCLITest(t)
	deckID := testutil.CreateTestDeck(t, db, "Capitals")
	testutil.CreateTestCard(t, db, deckID, "France?", "Paris")
	testutil.CreateTestCard(t, db, deckID, "Japan?", "Tokyo")

	output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1", "--json"})
	require.NoError(t, err)
	assert.Contains(t, output, `"card_id":1`)
	assert.Equal(t, 1, testutil.CountRows(t, db, "cards"))

	_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "1"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
	assert.Equal(t, 1, testutil.CountRows(t, db, "cards"))
}
