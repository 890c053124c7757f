package cmd

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestAuditLog(t *testing.T) {
	env := newTestEnv(t)

	_, _ = env.runErr("name", "good.txt", "con.txt")
	env.run("path", "a/b")

	// One row per verdict
	db, err := sql.Open("sqlite", filepath.Join(env.home, ".pathcheck", "log", "pathcheck-log.db"))
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log WHERE action IN ('filename', 'path')").Scan(&count))
	assert.Equal(t, 3, count)

	var rule string
	require.NoError(t, db.QueryRow("SELECT rule FROM log WHERE input = 'con.txt'").Scan(&rule))
	assert.Equal(t, "reserved", rule)

	out := env.run("-o", "json", "log", "--limit", "2")
	var entries []struct {
		Source  string `json:"source"`
		Input   string `json:"input"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "check:path", entries[0].Source)
	assert.Equal(t, "a/b", entries[0].Input)
	assert.Equal(t, "con.txt", entries[1].Input)
	assert.False(t, entries[1].Success)

	out = env.run("log", "--since", "1d")
	env.contains(out, "reserved")
	env.contains(out, `"good.txt"`)

	out = env.run("log", "--prune", "1d")
	env.contains(out, "pruned 0 entries")
}

func TestAuditLog_Disabled(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		env := newTestEnv(t)
		env.setenv("PATHCHECK_NO_LOG", "1")

		env.run("name", "a.txt")
		assert.NoFileExists(t, filepath.Join(env.home, ".pathcheck", "log", "pathcheck-log.db"))

		out, err := env.runErr("log")
		assert.Error(t, err)
		env.contains(out, "audit log is disabled")
	})

	t.Run("config", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "log.enabled", "false")

		env.run("name", "a.txt")
		out, err := env.runErr("log")
		assert.Error(t, err)
		env.contains(out, "audit log is disabled")
	})
}

func TestAuditLog_BadDuration(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("log", "--since", "7y")
	assert.Error(t, err)
	env.contains(out, "invalid duration format")
}
