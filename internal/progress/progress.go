// Package progress provides CLI progress indicators for long scans. Output
// goes to stderr to keep stdout clean for piping, and nothing is drawn unless
// stderr is a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
// For small scans, progress adds noise without benefit.
const minItems = 5

// line redraws a single status line in place, remembering how much it wrote
// so that clearing covers the whole line.
type line struct {
	w     io.Writer
	isTTY bool
	width int
}

func newLine() line {
	return line{w: os.Stderr, isTTY: term.IsTerminal(int(os.Stderr.Fd()))}
}

func (l *line) draw(s string) {
	if !l.isTTY {
		return
	}
	pad := ""
	if n := len(s); n < l.width {
		pad = strings.Repeat(" ", l.width-n)
	}
	fmt.Fprintf(l.w, "\r%s%s", s, pad)
	l.width = max(l.width, len(s))
}

func (l *line) clear() {
	if !l.isTTY || l.width == 0 {
		return
	}
	fmt.Fprintf(l.w, "\r%s\r", strings.Repeat(" ", l.width))
	l.width = 0
}

// Progress tracks and displays how many entries have been checked.
type Progress struct {
	line
	label   string
	total   int
	current int
}

// New creates a progress reporter that writes to stderr.
// If total is less than minItems, progress updates are suppressed.
func New(label string, total int) *Progress {
	return &Progress{line: newLine(), label: label, total: total}
}

// Increment advances the progress counter by one.
func (p *Progress) Increment() {
	p.current++
}

// Print redraws the progress line. No-op off a terminal or for small totals.
func (p *Progress) Print() {
	if p.total < minItems {
		return
	}
	pct := (p.current * 100) / p.total
	p.draw(fmt.Sprintf("%s... %d/%d (%d%%)", p.label, p.current, p.total, pct))
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	p.clear()
}

// Spinner shows that a directory walk is still running when the number of
// entries is not yet known.
type Spinner struct {
	line
	label   string
	frame   int
	count   int
	frames  []string
	running bool
}

// NewSpinner creates a spinner that writes to stderr.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		line:   newLine(),
		label:  label,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start displays the spinner.
func (s *Spinner) Start() {
	s.running = true
	s.draw(fmt.Sprintf("%s %s...", s.frames[0], s.label))
}

// Tick advances the animation and the count of entries found.
func (s *Spinner) Tick() {
	if !s.running {
		return
	}
	s.count++
	s.frame = (s.frame + 1) % len(s.frames)
	s.draw(fmt.Sprintf("%s %s... %d", s.frames[s.frame], s.label, s.count))
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.clear()
}
