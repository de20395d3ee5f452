package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer // defaults to os.Stdout
	Err   io.Writer // defaults to os.Stderr
}

// NewFormatter reads --json and --quiet from cmd and writes to its output streams.
// Styled text on stdout is downsampled to what the stream supports.
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ()),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly flags shared by all commands
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int64 }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.JSONSuccess(map[string]any{"data": data})
	}

	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// JSONSuccess writes fields plus "success": true as one JSON object
func (f *OutputFormatter) JSONSuccess(fields map[string]any) error {
	payload := map[string]any{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	return json.NewEncoder(f.out()).Encode(payload)
}

// Println writes a human-readable line unless quiet mode is on
func (f *OutputFormatter) Println(args ...any) {
	if f.Quiet {
		return
	}
	_, _ = fmt.Fprintln(f.out(), args...)
}

// Printf writes human-readable text unless quiet mode is on
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.Quiet {
		return
	}
	_, _ = fmt.Fprintf(f.out(), format, args...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	if _, err := fmt.Fprintf(f.errOut(), "Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		_, err := fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
		return err
	}
	return nil
}

// Fail reports err under code and returns a *CodedError carrying the exit
// code for err, so the caller can return it straight from RunE.
func (f *OutputFormatter) Fail(code string, err error) error {
	return f.FailWithSuggestion(code, err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(code string, err error, suggestion string) error {
	// Output failures leave nothing else to report to
	_ = f.ErrorWithSuggestion(code, err.Error(), suggestion)
	return &CodedError{Code: ExitCode(err), Err: err}
}
