// Package duration parses human-friendly retention spans such as "30d",
// "12 hours" or "1y" into time.Duration values.
package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	// ErrInvalidFormat indicates the input contains invalid characters
	ErrInvalidFormat = errors.New("invalid duration format")

	// ErrInvalidNumber indicates the numeric part is invalid or negative
	ErrInvalidNumber = errors.New("invalid duration number")

	// ErrInvalidUnit indicates the unit part is not recognized
	ErrInvalidUnit = errors.New("invalid duration unit")
)

var units = map[string]time.Duration{
	"h": time.Hour,
	"d": 24 * time.Hour,
	"w": 7 * 24 * time.Hour,
	"m": 30 * 24 * time.Hour,
	"y": 365 * 24 * time.Hour,
}

var aliases = map[string]string{
	"hour": "h", "hours": "h",
	"day": "d", "days": "d",
	"week": "w", "weeks": "w",
	"month": "m", "months": "m",
	"year": "y", "years": "y",
}

// Parse converts inputs like "30d", "24 hours" or "1y" to a time.Duration.
// Month means 30 days and year means 365 days.
func Parse(input string) (time.Duration, error) {
	if input = strings.TrimSpace(input); input == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}

	numStr, unit, err := split(strings.ToLower(input))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid characters", ErrInvalidFormat)
	}

	num, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, fmt.Errorf("%w: must be a number", ErrInvalidNumber)
	}
	if num < 0 {
		return 0, fmt.Errorf("%w: must not be negative", ErrInvalidNumber)
	}

	if unit == "" {
		return 0, fmt.Errorf("%w: missing unit", ErrInvalidFormat)
	}
	if alias, ok := aliases[unit]; ok {
		unit = alias
	}
	d, ok := units[unit]
	if !ok {
		return 0, fmt.Errorf("%w: %q (supported: h, d, w, m, y)", ErrInvalidUnit, unit)
	}

	return time.Duration(num) * d, nil
}

func split(input string) (string, string, error) {
	var num, unit strings.Builder
	for _, r := range input {
		switch {
		case unicode.IsDigit(r):
			if unit.Len() > 0 {
				return "", "", errors.New("digit after unit")
			}
			num.WriteRune(r)
		case unicode.IsLetter(r):
			unit.WriteRune(r)
		case unicode.IsSpace(r):
			// allow "30 days"
		default:
			return "", "", errors.New("invalid char included")
		}
	}
	return num.String(), unit.String(), nil
}
