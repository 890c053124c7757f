// filename.go implements the per-component portability rules.
//
// Rules run from cheapest and most universal (length, emptiness) to most
// platform-specific (reserved device names). The first failure is the one
// reported, so order decides which reason a user sees when a name breaks
// several rules at once.

package validate

import (
	"strings"
	"unicode/utf8"
)

// MaxComponent is the byte limit for one path component. 255 is the ceiling
// shared by NTFS, ext2/3/4, APFS and most others.
const MaxComponent = 255

// invalidChars are illegal under FAT*, VFAT, exFAT and NTFS.
const invalidChars = `"*<>?|`

// separators are the path separators of every supported platform:
// '/' POSIX, '\' DOS/Windows, ':' classic Mac OS/HFS and the DOS drive
// separator.
const separators = `/\:`

type rule struct {
	name  Rule
	check func(name string) error
}

// filenameRules is evaluated in order by Filename.
var filenameRules = []rule{
	{RuleLength, checkLength},
	{RuleEmpty, checkEmpty},
	{RuleTerminator, checkTerminator},
	{RuleEncoding, checkEncoding},
	{RuleTrailing, checkTrailing},
	{RuleCharacters, checkCharacters},
	{RuleSeparator, checkSeparators},
	{RuleReserved, checkReserved},
}

// Filename reports whether name is a valid file or folder name on all major
// filesystems and operating systems. It returns nil if the name is portable.
//
// Use it for output names inside a parent directory chosen by other means.
// It is stricter than any single filesystem, so do not use it to reject
// input files that already exist.
func Filename(name string) error {
	for _, r := range filenameRules {
		if err := r.check(name); err != nil {
			return err
		}
	}
	return nil
}

func checkLength(name string) error {
	if len(name) > MaxComponent {
		return reject(RuleLength, ErrTooLong, name,
			"File/folder name is too long (%d chars): %s", len(name), name)
	}
	return nil
}

func checkEmpty(name string) error {
	if name == "" {
		return reject(RuleEmpty, ErrMalformed, name, "File/folder name is empty")
	}
	return nil
}

// checkTerminator rejects NUL, which ends the string for every API that does
// not use counted strings.
func checkTerminator(name string) error {
	if strings.IndexByte(name, 0) >= 0 {
		return reject(RuleTerminator, ErrMalformed, name,
			"File/folder name contains a NUL byte: %q", name)
	}
	return nil
}

// checkEncoding rejects names that are not UTF-8. POSIX allows any bytes, but
// there is no agreed mapping from those onto Windows' UTF-16 names.
func checkEncoding(name string) error {
	if !utf8.ValidString(name) {
		return reject(RuleEncoding, ErrMalformed, name,
			"File/folder names containing non-UTF8 characters aren't portable")
	}
	return nil
}

// checkTrailing rejects names the Windows shell strips or refuses.
func checkTrailing(name string) error {
	last, _ := utf8.DecodeLastRuneInString(name)
	if last == ' ' || last == '.' {
		return reject(RuleTrailing, ErrInvalidName, name,
			"Windows forbids path components ending with spaces/periods")
	}
	return nil
}

func checkCharacters(name string) error {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 0x01 && c <= 0x1f) || c == 0x7f || strings.IndexByte(invalidChars, c) >= 0 {
			return reject(RuleCharacters, ErrInvalidCharacter, name,
				"Path component contains invalid characters: %q", name)
		}
	}
	return nil
}

func checkSeparators(name string) error {
	if strings.ContainsAny(name, separators) {
		return reject(RuleSeparator, ErrInvalidCharacter, name,
			"Path component contains a path separator: %q", name)
	}
	return nil
}

func checkReserved(name string) error {
	if IsReserved(name) {
		return reject(RuleReserved, ErrInvalidName, name,
			"Filename is reserved on Windows: %q", Stem(name))
	}
	return nil
}
