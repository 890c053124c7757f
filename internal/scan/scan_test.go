package scan

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jpl-au/pathcheck/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a tree containing names only POSIX filesystems accept.
func fixture(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixture names cannot be created on Windows")
	}

	dir := t.TempDir()
	files := []string{
		"good.txt",
		"bad?.txt",
		"con.txt",
		"trailing.",
		"dir:colon/inner.txt",
		"dir:colon/also?bad",
		"nested/ok/deep.md",
		".hidden?",
		"node_modules/x|y",
	}
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
	return dir
}

func paths(r Result) []string {
	var out []string
	for _, f := range r.Findings {
		out = append(out, f.Path)
	}
	return out
}

func TestRun(t *testing.T) {
	dir := fixture(t)

	r, err := Run(context.Background(), dir, Options{Exclude: []string{"node_modules/**"}})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"bad?.txt",
		"con.txt",
		"dir:colon",
		"dir:colon/also?bad",
		"trailing.",
	}, paths(r))
	assert.False(t, r.Portable())

	// good.txt, bad?.txt, con.txt, trailing., dir:colon (+2), nested (+ok +deep.md)
	assert.Equal(t, 10, r.Checked)

	byPath := map[string]Finding{}
	for _, f := range r.Findings {
		byPath[f.Path] = f
	}
	assert.Equal(t, validate.RuleReserved, byPath["con.txt"].Rule)
	assert.Equal(t, validate.RuleTrailing, byPath["trailing."].Rule)
	assert.Equal(t, validate.RuleSeparator, byPath["dir:colon"].Rule)
	assert.True(t, byPath["dir:colon"].Dir)
}

func TestRun_Hidden(t *testing.T) {
	dir := fixture(t)

	r, err := Run(context.Background(), dir, Options{Hidden: true, Exclude: []string{"node_modules"}})
	require.NoError(t, err)
	assert.Contains(t, paths(r), ".hidden?")
	assert.NotContains(t, paths(r), "node_modules/x|y")
}

func TestRun_NoExclude(t *testing.T) {
	dir := fixture(t)

	r, err := Run(context.Background(), dir, Options{})
	require.NoError(t, err)
	assert.Contains(t, paths(r), "node_modules/x|y")
}

func TestRun_Portable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), nil, 0o644))

	r, err := Run(context.Background(), dir, Options{})
	require.NoError(t, err)
	assert.True(t, r.Portable())
	assert.Equal(t, 1, r.Checked)
	assert.NotNil(t, r.Findings)
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := Run(context.Background(), filepath.Join(t.TempDir(), "missing"), Options{})
		assert.Error(t, err)
	})

	t.Run("bad exclude", func(t *testing.T) {
		_, err := Run(context.Background(), t.TempDir(), Options{Exclude: []string{"[bad"}})
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "invalid exclude pattern"))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Run(ctx, t.TempDir(), Options{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCheck_PathLength(t *testing.T) {
	// 32,759 bytes: under the limit alone, over it once "tree/" is prepended
	long := strings.Repeat("x/", 16379) + "x"
	require.Len(t, long, validate.MaxPath-1)

	tests := []struct {
		name string
		rel  string
		base string
		want bool
	}{
		{"short", "a/b.txt", "tree", false},
		{"long without base", long, "", false},
		{"long with base", long, "tree", true},
		{"over limit alone", long + "xx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, bad := check(entry{rel: tt.rel}, tt.base)
			assert.Equal(t, tt.want, bad)
			if tt.want {
				assert.Equal(t, validate.RuleLength, f.Rule)
				assert.Equal(t, tt.rel, f.Path)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Base(dir), prefix(dir))
	assert.Equal(t, "tree", prefix(filepath.Join(dir, "tree")))

	root := filepath.VolumeName(dir) + string(filepath.Separator)
	assert.Empty(t, prefix(root))
}
