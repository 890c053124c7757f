// Package diff renders the character-level difference between a rejected
// name and its portable replacement, so users can see exactly which
// characters the sanitizer changed.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Result holds diff output.
type Result struct {
	Old   string // old label
	New   string // new label
	Edits []Edit // ordered edits; concatenating non-insert text yields the old value
}

// Op is the kind of an Edit.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Edit is a run of characters kept, removed or added.
type Edit struct {
	Op   Op
	Text string
}

// Compute returns a character-level diff between old and new.
func Compute(oldValue, newValue, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldValue, newValue, false)
	d = dmp.DiffCleanupSemantic(d)

	edits := make([]Edit, 0, len(d))
	for _, x := range d {
		switch x.Type {
		case diffmatchpatch.DiffDelete:
			edits = append(edits, Edit{Op: Delete, Text: x.Text})
		case diffmatchpatch.DiffInsert:
			edits = append(edits, Edit{Op: Insert, Text: x.Text})
		default:
			edits = append(edits, Edit{Op: Equal, Text: x.Text})
		}
	}
	return Result{Old: oldLabel, New: newLabel, Edits: edits}
}

// Changed reports whether the two values differ.
func (r Result) Changed() bool {
	for _, e := range r.Edits {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

// Inline renders edits on one line in word-diff style: [-removed-]{+added+}.
// With colour, removed text is red and added text green, without brackets.
// Non-printable characters are shown as Go escapes.
func (r Result) Inline(colour bool) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, e := range r.Edits {
		text := visible(e.Text)
		switch {
		case e.Op == Delete && colour:
			b.WriteString(red + text + reset)
		case e.Op == Delete:
			b.WriteString("[-" + text + "-]")
		case e.Op == Insert && colour:
			b.WriteString(green + text + reset)
		case e.Op == Insert:
			b.WriteString("{+" + text + "+}")
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	return fmt.Sprintf("--- %s\n+++ %s\n%s\n", r.Old, r.New, r.Inline(colour))
}

// visible escapes control characters and invalid UTF-8 so they show up in a
// terminal instead of moving the cursor.
func visible(s string) string {
	q := fmt.Sprintf("%q", s)
	return q[1 : len(q)-1]
}
