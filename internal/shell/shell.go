// Package shell is the interactive, menu-driven console front end. It is the
// only part of the program that prints; the services return values or typed
// errors and the shell turns them into messages.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/thenoetrevino/flashquiz/internal/app"
	"github.com/thenoetrevino/flashquiz/internal/cli/styles"
)

// Shell runs the menus against one App
type Shell struct {
	app *app.App
	in  *bufio.Reader
	out io.Writer
}

// New builds a shell reading lines from in and writing to out.
// Styled output is downsampled to what out supports (plain text for files and buffers).
func New(a *app.App, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		app: a,
		in:  bufio.NewReader(in),
		out: colorprofile.NewWriter(out, os.Environ()),
	}
}

// Run shows the main menu until the user exits or input ends.
// It returns nil on Exit or end of input, and ctx.Err() if ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	err := s.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		slog.Debug("shell input closed")
		return nil
	}
	return err
}

func (s *Shell) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.heading("Main Menu:")
		s.println("1. Start Study")
		s.println("2. Manage Decks")
		s.println("3. Export to JSON")
		s.println("4. Import from JSON")
		s.println("5. Exit")

		choice, err := s.promptInt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.study(ctx)
		case 2:
			err = s.manageDecks(ctx)
		case 3:
			err = s.exportDecks(ctx)
		case 4:
			err = s.importDecks(ctx)
		case 5:
			return nil
		default:
			s.warning("Invalid choice. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) heading(text string) {
	s.println()
	s.println(styles.TitleStyle.Render(text))
}

func (s *Shell) success(text string) {
	s.println(styles.SuccessStyle.Render(text))
}

func (s *Shell) warning(text string) {
	s.println(styles.WarningStyle.Render(text))
}

func (s *Shell) note(text string) {
	s.println(styles.SubtitleStyle.Render(text))
}

func (s *Shell) failure(format string, args ...any) {
	s.println(styles.ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) println(args ...any) {
	_, _ = fmt.Fprintln(s.out, args...)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
