/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config and wires up extensions.
//
// Extensions register during init() but aren't initialised until first
// command execution. This two-phase pattern allows extensions to declare
// commands before configuration is known. The Context is created once and
// shared across all extensions.

package cmd

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jpl-au/pathcheck/extension"
	"github.com/jpl-au/pathcheck/internal/config"
)

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads configuration and injects it into extensions.
// A configured output.format applies when -o was not given.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		slog.Debug("config loaded", "path", cfg.Path())

		if output == "" && cfg.JSON() {
			output = "json"
		}

		extContext = extension.NewContext(cfg)
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// ExtContext returns the shared extension context, initialising it on first
// use. Used by long-running commands such as serve.
func ExtContext() (extension.Context, error) {
	if err := initExtensions(); err != nil {
		return nil, err
	}
	return extContext, nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}
