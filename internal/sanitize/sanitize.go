// Package sanitize proposes portable replacements for names that fail
// validation.
//
// The output of Name always passes validate.Filename. Replacements are lossy
// and one-way: two different inputs can map to the same output, so callers
// that create files from sanitized names must still handle collisions.
package sanitize

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jpl-au/pathcheck/internal/validate"
)

// replacer maps characters that are illegal somewhere to a hyphen.
var replacer = map[rune]rune{
	'/':  '-',
	'\\': '-',
	':':  '-',
	'*':  '-',
	'?':  '-',
	'"':  '-',
	'<':  '-',
	'>':  '-',
	'|':  '-',
}

// Placeholder replaces undecodable bytes and stands in for names that
// sanitize to nothing.
const Placeholder = "_"

// Name returns a portable version of name.
//
// Transformations, in order:
//   - invalid UTF-8 sequences become "_"
//   - NUL and control characters are removed
//   - " * < > ? | / \ : become "-"
//   - the result is cut to 255 bytes on a character boundary
//   - trailing spaces and periods are trimmed
//   - an empty result becomes "_"
//   - reserved device names are prefixed with "_" ("con.txt" -> "_con.txt")
func Name(name string) string {
	name = strings.ToValidUTF8(name, Placeholder)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if rep, ok := replacer[r]; ok {
			b.WriteRune(rep)
			continue
		}
		b.WriteRune(r)
	}

	s := finish(b.String())
	if s == "" {
		return Placeholder
	}
	if validate.IsReserved(s) {
		s = finish(Placeholder + s)
	}
	return s
}

// Path sanitizes every normal component of p, keeping the volume, root and
// "." / ".." segments as they are. Repeated separators collapse.
//
// The result can still exceed validate.MaxPath; length is left to the
// caller because shortening a path changes which directory it points into.
func Path(p string) string {
	parts := validate.Split(p)

	segs := make([]string, len(parts.Segments))
	for i, s := range parts.Segments {
		if s == "." || s == ".." {
			segs[i] = s
			continue
		}
		segs[i] = Name(s)
	}

	sep := string(filepath.Separator)
	out := parts.Volume
	if parts.Rooted {
		out += sep
	}
	out += strings.Join(segs, sep)
	if out == "" {
		return Placeholder
	}
	return out
}

// finish truncates to the component limit and trims characters Windows
// refuses at the end of a name.
func finish(s string) string {
	return strings.TrimRight(truncate(s, validate.MaxComponent), " .")
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
