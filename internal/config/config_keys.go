// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the CLI, where config is addressed by dotted keys
// (e.g., "scan.exclude").
//
// Design: Pointers are used for optional booleans so we can distinguish
// between "not set" (nil) and "explicitly false". Defaults only apply when
// the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/pathcheck/internal/glob"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"output.format",
		"scan.hidden", "scan.exclude",
		"log.enabled",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "output.format":
		if c.Output.Format == "" {
			return "text", nil
		}
		return c.Output.Format, nil
	case "scan.hidden":
		return strconv.FormatBool(c.ScanHidden()), nil
	case "scan.exclude":
		return strings.Join(c.Scan.Exclude, ","), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output.format":
		v := strings.ToLower(value)
		if v != "text" && v != "json" {
			return fmt.Errorf("%w: output.format must be text or json", ErrInvalidValue)
		}
		if v == "text" {
			v = ""
		}
		c.Output.Format = v
	case "scan.hidden":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Scan.Hidden = &b
	case "scan.exclude":
		var patterns []string
		for _, p := range strings.Split(value, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}
		if err := glob.Validate(patterns); err != nil {
			return fmt.Errorf("%w: scan.exclude: %w", ErrInvalidValue, err)
		}
		c.Scan.Exclude = patterns
	case "log.enabled":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Log.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	v := strings.ToLower(value)
	if v != "true" && v != "false" {
		return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
	}
	return v == "true", nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		all[k], _ = c.Get(k)
	}
	return all
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "output.format":
		return c.Output.Format != ""
	case "scan.hidden":
		return c.Scan.Hidden != nil
	case "scan.exclude":
		return len(c.Scan.Exclude) > 0
	case "log.enabled":
		return c.Log.Enabled != nil
	default:
		return false
	}
}
