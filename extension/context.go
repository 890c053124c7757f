// context.go defines the Context interface for extension access to pathcheck
// internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// Extensions receive Context during Init(), not at construction, because
// they register in init() before configuration has been loaded.

package extension

import (
	"github.com/jpl-au/pathcheck/internal/config"
)

// Context provides extensions controlled access to pathcheck internals.
type Context interface {
	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	cfg *config.Config
}

// NewContext creates a new extension context. A nil cfg is replaced by an
// empty configuration so that extensions always see defaults.
func NewContext(cfg *config.Config) Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &extContext{cfg: cfg}
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
