// Package scan reports non-portable names in an existing directory tree.
//
// Useful before copying a tree onto a FAT32 stick, into a Windows share or
// into a git repository that Windows users will clone. Every entry's own name
// is checked with validate.Filename; paths, prefixed with the root's base
// name, are checked against validate.MaxPath. A bad directory is reported
// once, not once per child.
//
// Hidden means a leading dot. The Windows hidden attribute is not consulted,
// so such entries are scanned like any other.
package scan

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jpl-au/pathcheck/internal/glob"
	"github.com/jpl-au/pathcheck/internal/progress"
	"github.com/jpl-au/pathcheck/internal/validate"
)

// Options configures a scan.
type Options struct {
	Hidden   bool     // Include hidden files/directories
	Exclude  []string // Glob patterns (relative, slash-separated) to skip
	Progress bool     // Show progress on stderr when it is a terminal
}

// Finding is one non-portable entry.
type Finding struct {
	Path   string        `json:"path"` // relative to the scan root, slash-separated
	Dir    bool          `json:"dir"`
	Rule   validate.Rule `json:"rule"`
	Reason string        `json:"reason"`
}

// Result contains the outcome of a scan.
type Result struct {
	Root     string    `json:"root"`
	Checked  int       `json:"checked"`
	Findings []Finding `json:"findings"`
}

// Portable reports whether the scan found nothing to fix.
func (r Result) Portable() bool { return len(r.Findings) == 0 }

type entry struct {
	rel string
	dir bool
}

// Run scans the tree rooted at root.
// Uses os.Root so that symlinks cannot lead the walk outside the tree.
func Run(ctx context.Context, root string, opts Options) (Result, error) {
	result := Result{Root: root, Findings: []Finding{}}

	if err := glob.Validate(opts.Exclude); err != nil {
		return result, fmt.Errorf("invalid exclude pattern: %w", err)
	}

	r, err := os.OpenRoot(root)
	if err != nil {
		return result, fmt.Errorf("opening scan root: %w", err)
	}
	defer r.Close()

	var spin *progress.Spinner
	if opts.Progress {
		spin = progress.NewSpinner("Walking")
		spin.Start()
	}
	entries, err := walk(ctx, r, "", opts, spin)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return result, fmt.Errorf("scanning %s: %w", root, err)
	}

	base := prefix(root)
	var prog *progress.Progress
	if opts.Progress {
		prog = progress.New("Checking", len(entries))
		defer prog.Done()
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if f, bad := check(e, base); bad {
			result.Findings = append(result.Findings, f)
		}
		result.Checked++
		if prog != nil {
			prog.Increment()
			prog.Print()
		}
	}
	return result, nil
}

// prefix returns the name the tree will carry when copied elsewhere: the
// base name of root, or "" when root has none (a filesystem root).
func prefix(root string) string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	if root == filepath.VolumeName(root)+string(filepath.Separator) {
		return ""
	}
	return filepath.Base(root)
}

// check validates one entry's own name and the length of its path below
// base. Parent components are not rechecked; they were entries themselves.
func check(e entry, base string) (Finding, bool) {
	err := validate.Filename(path.Base(e.rel))
	if err == nil {
		full := e.rel
		if base != "" {
			full = base + "/" + e.rel
		}
		if len(full) > validate.MaxPath {
			err = validate.Path(full)
		}
	}
	if err == nil {
		return Finding{}, false
	}
	return Finding{Path: e.rel, Dir: e.dir, Rule: validate.RuleOf(err), Reason: err.Error()}, true
}

// walk recursively lists entries within an os.Root in sorted order.
// Returns relative, slash-separated paths.
func walk(ctx context.Context, root *os.Root, dir string, opts Options, spin *progress.Spinner) ([]entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := dir
	if name == "" {
		name = "."
	}
	f, err := root.Open(name)
	if err != nil {
		return nil, err
	}
	des, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return nil, err
	}
	sort.Slice(des, func(i, j int) bool { return des[i].Name() < des[j].Name() })

	var out []entry
	for _, de := range des {
		n := de.Name()

		// Skip hidden files/dirs unless requested
		if !opts.Hidden && strings.HasPrefix(n, ".") {
			continue
		}

		rel := n
		if dir != "" {
			rel = dir + "/" + n
		}

		excluded, err := glob.Any(opts.Exclude, rel)
		if err != nil {
			return nil, err
		}
		if excluded {
			continue
		}

		out = append(out, entry{rel: rel, dir: de.IsDir()})
		if spin != nil {
			spin.Tick()
		}

		if de.IsDir() {
			sub, err := walk(ctx, root, rel, opts, spin)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
	}
	return out, nil
}
