package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validFilenames = []string{
	"-",                       // stdin/stdout
	"test1", "te st", ".test", // regular, space, leading period
	"lpt", "lpt0", "lpt10", // must not match reserved names by prefix
	"confile", "con.tar.gz", "résumé.pdf", "日本語",
}

// invalidFilenames covers every character and naming rule.
var invalidFilenames = []struct {
	input string
	rule  Rule
}{
	{"test\x03", RuleCharacters},
	{"test\x07", RuleCharacters},
	{"test\x08", RuleCharacters},
	{"test\x0B", RuleCharacters},
	{"test\x7f", RuleCharacters},
	{`"test"`, RuleCharacters},
	{"<testsss", RuleCharacters},
	{"testsss>", RuleCharacters},
	{"testsss|", RuleCharacters},
	{"testsss*", RuleCharacters},
	{"testsss?", RuleCharacters},
	{"?estsss", RuleCharacters},
	{"ends with space ", RuleTrailing},
	{"ends_with_period.", RuleTrailing},
	{"CON", RuleReserved},
	{"Con", RuleReserved},
	{"coN", RuleReserved},
	{"cOn", RuleReserved},
	{"CoN", RuleReserved},
	{"con", RuleReserved},
	{"lpt1", RuleReserved},
	{"com9", RuleReserved},
	{"clock$", RuleReserved},
	{"con.txt", RuleReserved},
	{"lpt1.dat", RuleReserved},
	{"", RuleEmpty},
	{"\x00", RuleTerminator},
	{"a\x00b", RuleTerminator},
}

func TestFilename_Accepts(t *testing.T) {
	for _, name := range validFilenames {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, Filename(name))
		})
	}
}

func TestFilename_Rejects(t *testing.T) {
	for _, tt := range invalidFilenames {
		t.Run(tt.input, func(t *testing.T) {
			err := Filename(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.rule, RuleOf(err))
		})
	}
}

func TestFilename_Separators(t *testing.T) {
	inputs := []string{
		"re/lative", "/ab/solute", `re\lative`, `\ab\solute`,
		`C:\absolute\win32`, `\\unc\path\for\win32`,
		"Classic Mac HD:Folder Name:File",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			err := Filename(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
		})
	}
}

func TestFilename_Length(t *testing.T) {
	assert.NoError(t, Filename(strings.Repeat("X", 255)))

	err := Filename(strings.Repeat("X", 256))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLong)
	assert.Contains(t, err.Error(), "(256 chars)")

	// Multi-byte characters count in bytes, not runes.
	assert.Error(t, Filename(strings.Repeat("é", 128)))
}

func TestFilename_NonUTF8(t *testing.T) {
	err := Filename("\xff")
	require.Error(t, err)
	assert.Equal(t, RuleEncoding, RuleOf(err))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFilename_RuleOrder(t *testing.T) {
	// Breaks length, trailing and reserved-character rules: length wins.
	long := strings.Repeat("?", 300) + "."
	assert.Equal(t, RuleLength, RuleOf(Filename(long)))

	// NUL is reported before the encoding check.
	assert.Equal(t, RuleTerminator, RuleOf(Filename("\x00\xff")))

	// Trailing period is reported before the reserved-character check.
	assert.Equal(t, RuleTrailing, RuleOf(Filename("a?.")))

	// Characters before separators.
	assert.Equal(t, RuleCharacters, RuleOf(Filename("a*/b")))
}

func TestFilename_ReasonIsReadable(t *testing.T) {
	err := Filename("con.txt")
	require.Error(t, err)
	assert.Equal(t, `Filename is reserved on Windows: "con"`, err.Error())

	var re *RejectionError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "con.txt", re.Value)
}

func TestStem(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"con.txt", "con"},
		{"archive.tar.gz", "archive.tar"},
		{".profile", ".profile"},
		{"noext", "noext"},
		{"trailing.", "trailing"},
		{"..", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.input))
		})
	}
}

func TestReservedNames(t *testing.T) {
	names := ReservedNames()
	assert.Len(t, names, 28)
	for _, n := range names {
		assert.True(t, IsReserved(n), n)
		assert.True(t, IsReserved(strings.ToLower(n)+".log"), n)
	}
	assert.False(t, IsReserved("com10"))
	assert.False(t, IsReserved(""))
}
