// Package duration provides parsing for human-readable duration strings.
//
// Users specify durations as "12h" (hours), "7d" (days), "4w" (weeks) or
// "3m" (months) rather than Go's time.Duration format. Used by
// "pathcheck log --since" and "--prune".
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var pattern = regexp.MustCompile(`^(\d+)([hdwm])$`)

const day = 24 * time.Hour

var units = map[string]time.Duration{
	"h": time.Hour,
	"d": day,
	"w": 7 * day,
	"m": 30 * day,
}

// Parse parses duration strings in the format: Nh, Nd, Nw, Nm.
// Examples: "12h" = 12 hours, "7d" = 7 days, "3m" = 3 months (90 days).
func Parse(s string) (time.Duration, error) {
	matches := pattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration format: %s (use 12h, 7d, 4w, or 3m)", s)
	}

	num, err := strconv.Atoi(matches[1])
	if err != nil {
		// Regex ensures digits only; overflow is still possible
		return 0, fmt.Errorf("invalid number: %w", err)
	}
	return time.Duration(num) * units[matches[2]], nil
}
