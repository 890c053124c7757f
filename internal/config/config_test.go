package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var c Config
	assert.False(t, c.JSON())
	assert.False(t, c.ScanHidden())
	assert.True(t, c.LogEnabled())
	assert.NoError(t, c.Validate())

	for _, k := range ValidKeys() {
		assert.False(t, c.IsSet(k), k)
	}
	assert.Equal(t, map[string]string{
		"output.format": "text",
		"scan.hidden":   "false",
		"scan.exclude":  "",
		"log.enabled":   "true",
	}, c.All())
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"output.format", "JSON", "json"},
		{"output.format", "text", "text"},
		{"scan.hidden", "true", "true"},
		{"scan.exclude", " node_modules/** , *.tmp ,", "node_modules/**,*.tmp"},
		{"log.enabled", "false", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			var c Config
			require.NoError(t, c.Set(tt.key, tt.value))
			got, err := c.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet_Errors(t *testing.T) {
	var c Config
	assert.ErrorIs(t, c.Set("no.such.key", "x"), ErrUnknownKey)
	assert.ErrorIs(t, c.Set("output.format", "yaml"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("scan.hidden", "yes"), ErrInvalidValue)
	assert.ErrorIs(t, c.Set("scan.exclude", "[bad"), ErrInvalidValue)

	_, err := c.Get("no.such.key")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestLoadScope_Local(t *testing.T) {
	t.Chdir(t.TempDir())

	// Missing file yields an empty config bound to the local path.
	c, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, c.Scope())
	assert.Equal(t, LocalPath(), c.Path())

	require.NoError(t, c.Set("scan.hidden", "true"))
	require.NoError(t, c.Set("scan.exclude", "vendor/**"))
	require.NoError(t, c.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, loaded.Scope())
	assert.True(t, loaded.ScanHidden())
	assert.Equal(t, []string{"vendor/**"}, loaded.Scan.Exclude)
}

func TestLoad_Malformed(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(Dir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(Dir, "config.yaml"), []byte("output: [unclosed"), 0o644))
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed config file")

	require.NoError(t, os.WriteFile(filepath.Join(Dir, "config.yaml"), []byte("output:\n  format: xml\n"), 0o644))
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
}
