/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Extensions access these via exported accessor functions rather than
// directly accessing the variables, so they never couple to cobra internals.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jpl-au/pathcheck/internal/format"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var validOutputFormats = []string{"text", "json"}

// ErrRejected is returned by check commands when at least one input failed.
// The reasons have already been printed, so cobra does not print it again.
var ErrRejected = errors.New("input rejected")

var (
	output  string
	quiet   bool
	verbose int
)

// out and errOut are the output writers for commands. Tests can replace
// them to capture output.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// Exported accessors for extensions.
// Extensions use these to access shared CLI state.

// Out returns the output writer.
func Out() io.Writer { return out }

// Err returns the writer for rejection reasons and warnings.
func Err() io.Writer { return errOut }

// Output returns the output format flag value.
func Output() string { return output }

// Quiet reports whether accepted inputs should be printed silently.
func Quiet() bool { return quiet }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// SetErr sets the error writer (for testing).
func SetErr(w io.Writer) { errOut = w }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// Colour reports whether output may contain ANSI colour: stdout must be a
// terminal and NO_COLOR unset.
func Colour() bool {
	if os.Getenv("NO_COLOR") != "" || out != io.Writer(os.Stdout) {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Progress reports whether long operations may draw progress on stderr.
func Progress() bool {
	return !quiet && !JSON()
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if error was printed (suppressing Cobra error), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	// If we can't print the error, checking it is futile. Return nil to
	// suppress Cobra's duplicate printing.
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// Report prints verdicts in the selected format and returns ErrRejected
// (wrapped with a count) if any input was rejected.
func Report(c *cobra.Command, vs []format.Verdict) error {
	if JSON() {
		for _, v := range vs {
			if err := PrintJSON(v); err != nil {
				return err
			}
		}
	} else {
		format.Verdicts(out, errOut, vs, quiet)
	}

	rejected := 0
	for _, v := range vs {
		if !v.Accepted {
			rejected++
		}
	}
	if rejected == 0 {
		return nil
	}
	c.SilenceErrors = true
	return fmt.Errorf("%w: %d of %d", ErrRejected, rejected, len(vs))
}

// setupLogging configures operational logging on stderr. The default level
// is WARN; each -v lowers it one step and -q raises it to ERROR.
func setupLogging() {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose == 1:
		level = slog.LevelInfo
	case verbose >= 2:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing for accepted inputs")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
}
