// Package cli provides helpers for running cobra commands against a test app.
package cli

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/app"
	flashcli "github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/testutil"
)

// Result is what one command execution wrote
type Result struct {
	Stdout string
	Stderr string
}

// SetupCLITest creates an in-memory database and an App around it
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns its standard output
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	res, err := ExecuteCLICommandWithInput(t, context.Background(), testApp, cmd, args, "")
	return res.Stdout, err
}

// ExecuteCLICommandWithInput executes a CLI command with stdin content and
// returns both output streams
func ExecuteCLICommandWithInput(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string, stdin string) (Result, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(flashcli.WithApp(ctx, testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
