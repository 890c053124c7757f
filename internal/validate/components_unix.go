//go:build !windows

// components_unix.go provides Unix path decomposition (Linux, macOS, BSD).
//
// On Unix only '/' separates components. Backslashes and colons are valid
// filename bytes locally, so they reach Filename and are rejected there as
// non-portable.

package validate

func isSeparator(c byte) bool {
	return c == '/'
}

func volumePrefix(string) string {
	return ""
}
