//go:build windows

// components_windows.go provides Windows path decomposition.
//
// Both '/' and '\' separate components. A volume prefix ("C:", UNC
// "\\server\share", "\\?\C:") is a prefix, not a component, and is not
// validated. A colon anywhere after the prefix still reaches Filename.

package validate

import "path/filepath"

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

func volumePrefix(p string) string {
	return filepath.VolumeName(p)
}
