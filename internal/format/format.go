// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// checking inputs while this package handles presentation concerns like
// column alignment, verdict lines, and colourised diffs.
package format

import (
	"fmt"
	"io"
	"time"

	"github.com/jpl-au/pathcheck/internal/diff"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/jpl-au/pathcheck/internal/scan"
	"github.com/jpl-au/pathcheck/internal/validate"
)

// Verdict is the serialisable outcome of checking one input.
type Verdict struct {
	Input    string        `json:"input"`
	Check    string        `json:"check"`
	Accepted bool          `json:"accepted"`
	Rule     validate.Rule `json:"rule,omitempty"`
	Reason   string        `json:"reason,omitempty"`
}

// NewVerdict builds a verdict for input from the error a check returned.
func NewVerdict(check, input string, err error) Verdict {
	v := Verdict{Input: input, Check: check, Accepted: err == nil}
	if err != nil {
		v.Rule = validate.RuleOf(err)
		v.Reason = err.Error()
	}
	return v
}

// Verdicts prints accepted inputs to w as "ok  <input>" and rejection
// reasons to errw. Accepted lines are omitted when quiet is set.
func Verdicts(w, errw io.Writer, vs []Verdict, quiet bool) {
	for _, v := range vs {
		if v.Accepted {
			if !quiet {
				fmt.Fprintf(w, "ok  %s\n", v.Input)
			}
			continue
		}
		fmt.Fprintln(errw, v.Reason)
	}
}

// Suggestion is a portable replacement for an input name or path.
type Suggestion struct {
	Input      string `json:"input"`
	Suggestion string `json:"suggestion"`
	Changed    bool   `json:"changed"`
}

// Suggest prints the suggested replacement. With showDiff set, a
// character-level diff against the input follows when the two differ.
func Suggest(w io.Writer, s Suggestion, showDiff, colour bool) {
	fmt.Fprintln(w, s.Suggestion)
	if !showDiff {
		return
	}
	r := diff.Compute(s.Input, s.Suggestion, "input", "suggestion")
	if !r.Changed() {
		return
	}
	fmt.Fprint(w, r.Format(colour))
}

// Findings prints scan findings, one per line, followed by a summary.
// Directories carry a trailing slash.
func Findings(w io.Writer, res scan.Result) {
	if len(res.Findings) == 0 {
		fmt.Fprintf(w, "ok  %s (%d entries checked)\n", res.Root, res.Checked)
		return
	}

	// Find max rule length for alignment
	maxRule := 4 // minimum "RULE"
	for _, f := range res.Findings {
		if len(f.Rule) > maxRule {
			maxRule = len(f.Rule)
		}
	}

	for _, f := range res.Findings {
		p := f.Path
		if f.Dir {
			p += "/"
		}
		fmt.Fprintf(w, "%-*s  %s  %s\n", maxRule, f.Rule, p, f.Reason)
	}
	fmt.Fprintf(w, "\n%d of %d entries are not portable\n", len(res.Findings), res.Checked)
}

// Entries prints audit log entries in long format.
//
// Column order is TIME, RESULT, ACTION, SOURCE, INPUT. Fixed-width columns
// come first so they align; the input is last because its width varies.
func Entries(w io.Writer, entries []log.Entry) {
	if len(entries) == 0 {
		return
	}

	maxSource := 6 // minimum "SOURCE"
	for _, e := range entries {
		if len(e.Source) > maxSource {
			maxSource = len(e.Source)
		}
	}

	fmt.Fprintf(w, "%-16s  %-10s  %-8s  %-*s  %s\n", "TIME", "RESULT", "ACTION", maxSource, "SOURCE", "INPUT")
	for _, e := range entries {
		t := time.Unix(e.Start, 0).Format("2006-01-02 15:04")
		result := "ok"
		if !e.Success {
			result = e.Rule
			if result == "" {
				result = "error"
			}
		}
		input := e.Input
		if input == "" {
			input = "-"
		}
		fmt.Fprintf(w, "%-16s  %-10s  %-8s  %-*s  %q\n", t, result, e.Action, maxSource, e.Source, input)
	}
}
