// Package glob provides glob pattern matching for scan exclusions.
//
// Extends path.Match with ** support for matching any path segments.
// This enables patterns like "node_modules/**" to exclude everything under a
// directory regardless of nesting depth. Paths and patterns use forward
// slashes on every platform.
package glob

import (
	"path"
	"strings"
)

// Match reports whether p matches the glob pattern.
// Supports standard glob patterns (*, ?, [...]) plus ** for matching any
// path segments. A pattern without a slash also matches p's final segment,
// so "*.tmp" excludes temporary files at any depth.
// Returns an error if the pattern is malformed.
func Match(pattern, p string) (bool, error) {
	pattern = strings.ReplaceAll(pattern, "\\", "/")

	// Handle ** (match any path segments)
	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")
		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			if prefix != "" && p != prefix && !strings.HasPrefix(p, prefix+"/") {
				return false, nil
			}
			if suffix == "" {
				return true, nil
			}
			// Match suffix as a glob pattern against all path segments
			segments := strings.Split(p, "/")
			for i := range segments {
				tail := strings.Join(segments[i:], "/")
				m, err := path.Match(suffix, tail)
				if err != nil {
					return false, err
				}
				if m {
					return true, nil
				}
			}
			return false, nil
		}
	}

	matched, err := path.Match(pattern, p)
	if err != nil || matched {
		return matched, err
	}

	if !strings.Contains(pattern, "/") {
		return path.Match(pattern, path.Base(p))
	}
	return false, nil
}

// Any reports whether p matches at least one pattern.
func Any(patterns []string, p string) (bool, error) {
	for _, pat := range patterns {
		m, err := Match(pat, p)
		if err != nil {
			return false, err
		}
		if m {
			return true, nil
		}
	}
	return false, nil
}

// Validate returns an error for the first malformed pattern.
func Validate(patterns []string) error {
	for _, pat := range patterns {
		if _, err := Match(pat, ""); err != nil {
			return err
		}
	}
	return nil
}
