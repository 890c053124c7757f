// Package all imports all built-in pathcheck extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/pathcheck/extension/check"
	_ "github.com/jpl-au/pathcheck/extension/core"
	_ "github.com/jpl-au/pathcheck/extension/scan"
	_ "github.com/jpl-au/pathcheck/extension/suggest"
)
