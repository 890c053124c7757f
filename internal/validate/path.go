// path.go implements whole-path portability validation.
//
// Separated from filename.go because a path adds two concerns a component
// does not have: an overall length limit and decomposition along the native
// separator. Decomposition is platform-specific and lives in
// components_unix.go and components_windows.go.

package validate

// MaxPath is the byte limit for a whole path: the ceiling FAT32 and exFAT
// impose even when the `\\?\` prefix lifts the legacy 260-character Windows
// limit.
//
// Tighter limits were considered and left out: PATH_MAX (4096, not enforced
// by filesystems), UDF's 1023 bytes, the legacy Windows 260 and ISO 9660
// without extensions (8 levels, 32-character names, no dots in directories).
const MaxPath = 32760

// Path reports whether p is valid, as a path to create, on all major
// filesystems and operating systems. It returns nil if the path is portable.
//
// Rules:
//   - Empty paths rejected
//   - Paths longer than MaxPath bytes rejected
//   - Every normal component must pass Filename; "." and ".." are skipped
//
// Separators are interpreted natively. On Unix a backslash is an ordinary
// byte, so "dir\file" is one component and is rejected by the separator
// rule: it is ambiguous whether the author meant a separator.
func Path(p string) error {
	if p == "" {
		return reject(RuleEmpty, ErrMalformed, p, "Path is empty")
	}
	if len(p) > MaxPath {
		return reject(RuleLength, ErrTooLong, p, "Path is too long (%d chars): %q", len(p), p)
	}

	for _, c := range Components(p) {
		if err := Filename(c); err != nil {
			return err
		}
	}
	return nil
}

// Components returns the normal components of p in order, splitting on the
// native separators. Repeated separators collapse, and the root, volume
// prefix, "." and ".." are dropped.
//
//   - "/a//b" -> ["a", "b"]
//   - "foo/.." -> ["foo"]
func Components(p string) []string {
	var out []string
	for _, s := range Split(p).Segments {
		if s != "." && s != ".." {
			out = append(out, s)
		}
	}
	return out
}

// Parts is a path broken along its native separators.
type Parts struct {
	Volume   string   // volume prefix, Windows only ("C:", `\\server\share`)
	Rooted   bool     // a separator follows the volume
	Segments []string // non-empty segments, "." and ".." included
}

// Split breaks p along its native separators. Empty segments from repeated
// or trailing separators are dropped.
func Split(p string) Parts {
	vol := volumePrefix(p)
	parts := Parts{Volume: vol}
	rest := p[len(vol):]
	parts.Rooted = rest != "" && isSeparator(rest[0])

	start := 0
	for i := 0; i <= len(rest); i++ {
		if i < len(rest) && !isSeparator(rest[i]) {
			continue
		}
		if i > start {
			parts.Segments = append(parts.Segments, rest[start:i])
		}
		start = i + 1
	}
	return parts
}
