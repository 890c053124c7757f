package validate

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_AcceptsValidNames(t *testing.T) {
	for _, name := range validFilenames {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, Path(name))
		})
	}
}

func TestPath_RejectsInvalidNames(t *testing.T) {
	for _, tt := range invalidFilenames {
		t.Run(tt.input, func(t *testing.T) {
			assert.Error(t, Path(tt.input))
		})
	}
}

func TestPath_PseudoComponents(t *testing.T) {
	tests := []string{"foo/..", "./foo", "../foo", "a/./b", ".", "..", "/"}
	for _, p := range tests {
		t.Run(p, func(t *testing.T) {
			assert.NoError(t, Path(p))
		})
	}
}

func TestPath_NativeSeparators(t *testing.T) {
	paths := []string{"re/lative", "/ab/solute", "/path//with/repeated//separators"}
	if runtime.GOOS == "windows" {
		paths = append(paths, `re\lative`, `\ab\solute`, `C:\absolute\win32`, `\\unc\share\file`)
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			assert.NoError(t, Path(p))
		})
	}
}

func TestPath_ForeignSeparators(t *testing.T) {
	paths := []string{"Classic Mac HD:Folder Name:File"}
	if runtime.GOOS != "windows" {
		paths = append(paths,
			`relative\win32`,
			`C:\absolute\win32`,
			`\drive\relative\win32`,
			`\\unc\path\for\win32`,
		)
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			err := Path(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
		})
	}
}

func TestPath_CollapsesRepeatedSeparators(t *testing.T) {
	assert.Equal(t, Path("/a/b"), Path("/a//b"))
	assert.Equal(t, Components("/a/b"), Components("/a//b"))
	assert.Equal(t, Path("/a/con"), Path("/a///con"))
}

func TestPath_Empty(t *testing.T) {
	err := Path("")
	require.Error(t, err)
	assert.Equal(t, "Path is empty", err.Error())
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestPath_LengthLimits(t *testing.T) {
	var b strings.Builder
	for b.Len() < MaxPath+1 {
		b.WriteString(strings.Repeat("X", 255))
		b.WriteByte('/')
	}
	s := b.String()

	// >32760 bytes
	err := Path(s[:MaxPath+1])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLong)
	assert.Equal(t, RuleLength, RuleOf(err))

	// 32760 bytes (maximum for FAT32/VFAT/exFAT)
	assert.NoError(t, Path(s[:MaxPath]))

	// 256 bytes with no separators
	assert.Error(t, Path(strings.Repeat("X", 256)))

	// 255 bytes with no separators
	assert.NoError(t, Path(strings.Repeat("X", 255)))
}

func TestPath_NonUTF8(t *testing.T) {
	err := Path("/\xff/foo")
	require.Error(t, err)
	assert.Equal(t, RuleEncoding, RuleOf(err))
}

func TestPath_FirstRejectionWins(t *testing.T) {
	err := Path("ok/con.txt/bad?/trailing.")
	require.Error(t, err)
	assert.Equal(t, RuleReserved, RuleOf(err))
}

func TestComponents(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"/a//b", []string{"a", "b"}},
		{"foo/..", []string{"foo"}},
		{"./x/./y/", []string{"x", "y"}},
		{"/", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Components(tt.input))
		})
	}
}

// Path accepts exactly when every normal component is accepted.
func TestPath_AgreesWithFilename(t *testing.T) {
	inputs := []string{
		"a/b/c", "a/con/c", "a/b?/c", "x/ends./y", "docs/../lpt1.txt",
		"deep/" + strings.Repeat("n", 256), "ok/fine.txt",
	}
	for _, p := range inputs {
		t.Run(p, func(t *testing.T) {
			want := true
			for _, c := range Components(p) {
				if Filename(c) != nil {
					want = false
				}
			}
			assert.Equal(t, want, Path(p) == nil)
		})
	}
}
