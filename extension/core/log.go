// log.go implements the "pathcheck log" command for reviewing and pruning
// past verdicts.

package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/jpl-au/pathcheck/cmd"
	"github.com/jpl-au/pathcheck/extension"
	"github.com/jpl-au/pathcheck/internal/duration"
	"github.com/jpl-au/pathcheck/internal/format"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/spf13/cobra"
)

// ErrLogDisabled is returned when the audit log was not opened.
var ErrLogDisabled = errors.New("audit log is disabled (log.enabled=false or PATHCHECK_NO_LOG set)")

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show or prune the audit log",
		Long: `Show the most recent checks recorded in ~/.pathcheck/log/pathcheck-log.db,
newest first, across all projects.

Durations: 12h (hours), 7d (days), 4w (weeks), 3m (months).

Examples:
  pathcheck log
  pathcheck log --limit 50 --since 7d
  pathcheck log --prune 3m       # delete entries older than 3 months
  pathcheck log -o json`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Maximum entries to show")
	c.Flags().String(extension.FlagSince, "", "Only show entries newer than this (e.g., 7d)")
	c.Flags().String(extension.FlagPrune, "", "Delete entries older than this (e.g., 3m)")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	if !log.Enabled() {
		return cmd.PrintJSONError(ErrLogDisabled)
	}

	if prune, _ := c.Flags().GetString(extension.FlagPrune); prune != "" {
		d, err := duration.Parse(prune)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		n, err := log.Prune(time.Now().Add(-d))
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]int64{"pruned": n})
		}
		fmt.Fprintf(cmd.Out(), "pruned %d entries\n", n)
		return nil
	}

	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	if limit <= 0 {
		return cmd.PrintJSONError(fmt.Errorf("--%s must be positive", extension.FlagLimit))
	}

	var since time.Time
	if s, _ := c.Flags().GetString(extension.FlagSince); s != "" {
		d, err := duration.Parse(s)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		since = time.Now().Add(-d)
	}

	entries, err := log.Recent(limit, since)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return cmd.PrintJSON(entries)
	}
	format.Entries(cmd.Out(), entries)
	return nil
}
