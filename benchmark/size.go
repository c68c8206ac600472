package benchmark

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSize is returned by ParseSize for unparseable or negative size expressions.
var ErrInvalidSize = errors.New("invalid object size")

// ParseSize converts a human-readable size like "4k", "8m" or "2g" into an
// exact byte count. Suffixes are case-insensitive and 1024-based; a bare
// number means raw bytes. No upper bound is enforced.
func ParseSize(text string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidSize)
	}

	var multiplier int64 = 1
	switch s[len(s)-1] {
	case 'k':
		multiplier = 1024
		s = s[:len(s)-1]
	case 'm':
		multiplier = 1024 * 1024
		s = s[:len(s)-1]
	case 'g':
		multiplier = 1024 * 1024 * 1024
		s = s[:len(s)-1]
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, text)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: %q must be non-negative", ErrInvalidSize, text)
	}
	return value * multiplier, nil
}
