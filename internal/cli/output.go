package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// IDGetter is implemented by results that have a single identifying ID,
// which is all quiet mode prints
type IDGetter interface {
	GetID() int64
}

// IDLister is implemented by results that are a list; quiet mode prints one ID per line
type IDLister interface {
	GetIDs() []int64
}

// HumanWriter is implemented by results with a human-readable rendering
type HumanWriter interface {
	WriteHuman(w io.Writer) error
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer // defaults to os.Stdout
	ErrOut io.Writer // defaults to os.Stderr
}

// NewOutputFormatter reads --json and --quiet from cmd and writes to the
// command's configured output streams
func NewOutputFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case IDGetter:
			_, err := fmt.Fprintf(f.out(), "%d\n", v.GetID())
			return err
		case IDLister:
			for _, id := range v.GetIDs() {
				if _, err := fmt.Fprintf(f.out(), "%d\n", id); err != nil {
					return err
				}
			}
			return nil
		default:
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
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

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if hw, ok := data.(HumanWriter); ok {
		return hw.WriteHuman(f.out())
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}
