// Package dateutil resolves user-facing date values for the page footer.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length to prevent abuse.
const MaxFormatLength = 50

// DefaultFormat is used when "auto" is given without a format.
const DefaultFormat = "YYYY-MM-DD"

// Presets are named shortcuts for common date formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokenReplacer rewrites user-friendly tokens into Go's reference time
// components. Longer tokens come first so "YYYY" never matches as two "YY".
var tokenReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MMMM", "January",
	"MMM", "Jan",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"M", "1",
	"D", "2",
)

// Format renders t using a user-friendly format string (tokens: YYYY, YY,
// MMMM, MMM, MM, M, DD, D; other characters pass through literally).
func Format(format string, t time.Time) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}
	return t.Format(tokenReplacer.Replace(format)), nil
}

// Resolve handles "auto" syntax for date values:
//   - "auto"          → t in the default format
//   - "auto:FORMAT"   → t in a custom format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset"   → t using a named preset (iso, european, us, long)
//   - anything else   → returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func Resolve(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}
	if lower == "auto" {
		return Format(DefaultFormat, t)
	}
	if !strings.HasPrefix(lower, "auto:") {
		return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	format := value[len("auto:"):]
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	return Format(format, t)
}
