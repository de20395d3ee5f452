package logging

import (
	"io"
	"log/slog"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
// Without a File, records are discarded so the console stays reserved for the shell.
type Options struct {
	File   string
	Level  string // debug|info|warn|error
	Format string // text|json
}

// Init configures the global logger and sets slog.Default as well.
// The returned closer releases the rotating file, if any.
func Init(opts Options) io.Closer {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if strings.TrimSpace(opts.File) != "" {
		rotating := &lj.Logger{Filename: opts.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		w, closer = rotating, rotating
	}

	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	// SetDefault also routes the standard log package through handler
	slog.SetDefault(slog.New(handler).With(slog.String("app", "flashquiz")))

	return closer
}

// ParseLevel converts a string to slog.Level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
