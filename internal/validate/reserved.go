// reserved.go holds the Windows device names that cannot be used as file
// stems.
//
// Windows reserves these in the device namespace, so they stay illegal with
// any extension appended ("con.txt", "lpt1.dat"). The `\\?\` prefix bypasses
// the reservation but most software never uses it.
//
// Sources: Boost path name portability guide; Wikipedia "Filename",
// comparison of filename limitations.

package validate

import "strings"

// reservedNames is read-only after package initialisation.
var reservedNames = map[string]bool{
	"AUX": true, "CON": true, "NUL": true, "PRN": true,

	// Serial ports
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,

	// Parallel ports
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,

	// Legacy DOS drivers
	"CLOCK$": true, "$IDLE$": true, "CONFIG$": true, "KEYBD$": true,
	"LST": true, "SCREEN$": true,
}

// ReservedNames returns the reserved device names in upper case.
func ReservedNames() []string {
	names := make([]string, 0, len(reservedNames))
	for n := range reservedNames {
		names = append(names, n)
	}
	return names
}

// IsReserved reports whether name's stem is a reserved device name.
// The comparison is case-insensitive and ignores the final extension.
func IsReserved(name string) bool {
	stem := Stem(name)
	if stem == "" {
		return false
	}
	return reservedNames[strings.ToUpper(stem)]
}

// Stem returns name without its final extension.
//
// A leading dot does not start an extension (".profile" is its own stem),
// and ".." has no stem at all.
//
//   - "con.txt" -> "con"
//   - "archive.tar.gz" -> "archive.tar"
//   - ".profile" -> ".profile"
//   - ".." -> ""
func Stem(name string) string {
	if name == ".." {
		return ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name
	}
	return name[:i]
}
