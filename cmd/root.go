/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// PersistentPreRunE configures operational logging and loads configuration
// lazily. Commands listed in noConfigCommands skip config loading so that a
// broken config file can still be inspected and repaired.

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/jpl-au/pathcheck/internal/config"
	"github.com/jpl-au/pathcheck/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathcheck",
	Short: "Check file and path names for cross-platform portability",
	Long: `Checks that file names and paths are valid on every major filesystem and
operating system (Windows, macOS, Linux, FAT, NTFS, ext4, APFS), and that
input files are readable and output directories writable.

Each argument is checked independently. Accepted inputs print "ok  <input>";
rejected inputs print the reason on stderr and the command exits 1.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Arguments have been validated by this point; further errors are
		// runtime failures where usage text is noise.
		cmd.SilenceUsage = true

		setupLogging()

		if noConfigCommands[topLevelCmdName(cmd)] {
			return nil
		}
		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}
		return nil
	},
}

// noConfigCommands lists commands that run without loading configuration.
var noConfigCommands = map[string]bool{
	"config":     true,
	"guide":      true,
	"version":    true,
	"completion": true,
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "pathcheck name foo", returns "name".
// For "pathcheck completion bash", returns "completion".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// auditEnabled reports whether verdicts should be written to the audit log.
// PATHCHECK_NO_LOG disables it outright; otherwise config decides. An
// unreadable config leaves logging on, the command itself reports the error.
func auditEnabled() bool {
	if os.Getenv("PATHCHECK_NO_LOG") != "" {
		return false
	}
	cfg, err := config.Load()
	if err != nil {
		return true
	}
	return cfg.LogEnabled()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions and executes the command.
// Exit code 1 indicates a rejected input or an error.
func Execute() {
	if auditEnabled() {
		// Initialise audit logger (warn if it fails, but continue)
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}
	}

	registerExtensions()
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		if !errors.Is(err, ErrRejected) {
			slog.Debug("command failed", "error", err)
		}
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
