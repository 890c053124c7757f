// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "no-progress" -> FlagNoProgress).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagDiff       = "diff"        // Show diff output
	FlagHidden     = "hidden"      // Include hidden files/directories
	FlagLocal      = "local"       // Use local scope
	FlagNoProgress = "no-progress" // Disable progress output
	FlagPath       = "path"        // Treat input as a path rather than a name
	FlagStdin      = "stdin"       // Accept "-" as standard input

	// String flags

	FlagExclude = "exclude" // Glob pattern to skip (repeatable)
	FlagPrune   = "prune"   // Age threshold for deletion (e.g., "3m")
	FlagSince   = "since"   // Age threshold for listing (e.g., "7d")

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)
