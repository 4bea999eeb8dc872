// Package pagination parses and bounds list and window query parameters.
package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is a validated skip/limit pair.
type Params struct {
	Skip  int
	Limit int
}

// Parse reads skip and limit. Empty values take defaults; anything
// non-numeric or out of range is an error.
func Parse(skip, limit string) (Params, error) {
	p := Params{Skip: 0, Limit: DefaultLimit}

	if s := strings.TrimSpace(skip); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Params{}, fmt.Errorf("skip must be an integer")
		}
		if n < 0 {
			return Params{}, fmt.Errorf("skip must be greater than or equal to 0")
		}
		p.Skip = n
	}

	if s := strings.TrimSpace(limit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Params{}, fmt.Errorf("limit must be an integer")
		}
		if n < 1 || n > MaxLimit {
			return Params{}, fmt.Errorf("limit must be between 1 and %d", MaxLimit)
		}
		p.Limit = n
	}

	return p, nil
}

// ParseBounded reads an optional integer in [min, max], returning def when empty.
func ParseBounded(name, raw string, def, min, max int) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", name, min, max)
	}
	return n, nil
}
