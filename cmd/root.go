// Package cmd wires the flashquiz command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/flashquiz/internal/cli"
	"github.com/thenoetrevino/flashquiz/internal/cli/card"
	"github.com/thenoetrevino/flashquiz/internal/cli/deck"
	"github.com/thenoetrevino/flashquiz/internal/cli/styles"
	"github.com/thenoetrevino/flashquiz/internal/cli/transfer"
	"github.com/thenoetrevino/flashquiz/internal/config"
	"github.com/thenoetrevino/flashquiz/internal/logging"
	"github.com/thenoetrevino/flashquiz/internal/shell"
)

// newRootCmd builds the command tree and a func releasing the log file a run
// opens. Without a subcommand the root starts the interactive shell on the
// command's stdin and stdout.
func newRootCmd() (*cobra.Command, func()) {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "flashquiz",
		Short: "Flashquiz - flashcard decks in your terminal",
		Long: `Flashquiz keeps decks of question/answer cards in a local SQLite file,
quizzes you on them, and moves them between machines as JSON.

Run without a subcommand for the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Root().PersistentFlags().GetString("config")
			cfg, err := config.Load(configPath, cmd.Root().PersistentFlags())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
				return &cli.CodedError{Code: cli.ExitError, Err: err}
			}

			logCloser = logging.Init(logging.Options{
				File:   cfg.Log.File,
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
			})
			styles.Init(cfg.ColorScheme)

			cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
			slog.Debug("command started", "command", cmd.CommandPath(), "db", cfg.DB.Path)
			return nil
		},
		RunE: runShell,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/flashquiz/config.yaml)")
	flags.String("db", "", "SQLite store file")
	flags.String("log-file", "", "Write diagnostics to this file (rotated)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("theme", "", "Color preset: default or monochrome")

	rootCmd.AddCommand(deck.DeckCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(transfer.ExportCmd())
	rootCmd.AddCommand(transfer.ImportCmd())

	return rootCmd, func() { closeLog(logCloser) }
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		return &cli.CodedError{Code: cli.ExitError, Err: err}
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing store", "error", err)
		}
	}()

	if err := shell.New(cliInstance.App, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx); err != nil {
		return &cli.CodedError{Code: cli.ExitError, Err: err}
	}
	return nil
}

func closeLog(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		slog.Error("error closing log file", "error", err)
	}
}

// Execute runs the command tree. Commands report their own failures and
// return a *cli.CodedError; anything else came from cobra's argument
// handling and is printed here as a usage error.
func Execute() error {
	rootCmd, cleanup := newRootCmd()
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, rootCmd)
}

func run(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var coded *cli.CodedError
	if errors.As(err, &coded) {
		return err
	}

	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err)
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Run '%s --help' for usage.\n", rootCmd.CommandPath())
	return &cli.CodedError{Code: cli.ExitUsage, Err: err}
}
