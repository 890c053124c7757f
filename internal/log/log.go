// Package log provides the audit trail of pathcheck verdicts.
// Logs are stored in ~/.pathcheck/log/pathcheck-log.db and record every
// check made from the CLI or the MCP server, across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	err := validate.Path(p)
//	log.Event("check:path", "path").
//		Input(p).
//		Write(err)
//
//	log.Event("scan:scan", "scan").
//		Input(root).
//		Detail("checked", res.Checked).
//		Detail("findings", len(res.Findings)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. A rejection passed to Write is
// recorded as a failure together with the rule that fired.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jpl-au/pathcheck/internal/validate"
	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string `json:"source"` // e.g., "check:path", "mcp:pathcheck_path"
	Action string `json:"action"` // check performed: filename, path, readable, outdir, suggest, scan
	Input  string `json:"input"`  // the name or path that was checked

	// Timing
	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Write() called

	Success bool           `json:"success"`          // whether the input was accepted
	Rule    string         `json:"rule,omitempty"`   // rule that rejected the input, if any
	Error   string         `json:"error,omitempty"`  // rejection reason or error message
	Detail  map[string]any `json:"detail,omitempty"` // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the check originated:
//   - CLI commands: "{extension}:{command}" (e.g., "check:name", "scan:scan")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:pathcheck_path")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Input sets the name or path that was checked.
func (b *Builder) Input(s string) *Builder {
	b.entry.Input = s
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// suggested replacements, finding counts, exclusion patterns.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as accepted.
// If err is non-nil, the entry is logged as rejected with the error message
// and, for validation rejections, the rule that fired.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
		b.entry.Rule = string(validate.RuleOf(err))
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute working directory of the invocation.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
// A zero Start or End is recorded as the current time.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	now := time.Now().Unix()
	if e.Start == 0 {
		e.Start = now
	}
	if e.End == 0 {
		e.End = e.Start
	}
	l.log(e)
}

// Recent returns up to limit entries started at or after since, newest
// first. A zero since means no lower bound. Returns nil without error if the
// logger is not initialised.
func Recent(limit int, since time.Time) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	var from int64
	if !since.IsZero() {
		from = since.Unix()
	}
	return l.recent(limit, from)
}

// Prune permanently deletes entries started before the given time and
// returns how many were removed.
func Prune(before time.Time) (int64, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return 0, nil
	}
	return l.prune(before.Unix())
}

// Enabled reports whether the global logger is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return global != nil
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
