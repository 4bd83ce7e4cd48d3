package scheduler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTime is returned for clock strings that are not HH:MM and for
// arithmetic that would produce a negative clock.
var ErrMalformedTime = errors.New("malformed time")

// ParseClock converts an "HH:MM" string into minutes since midnight.
// Hours are not capped at 23: derived labels past midnight (e.g. "24:20")
// parse back to the same total so they can anchor nested items.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !isDigits(hh) || !isDigits(mm) || len(mm) > 2 {
		return 0, fmt.Errorf("%w: %q (expected HH:MM)", ErrMalformedTime, s)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTime, s, err)
	}
	minutes, _ := strconv.Atoi(mm)
	if minutes > 59 {
		return 0, fmt.Errorf("%w: %q minutes out of range", ErrMalformedTime, s)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
// There is no rollover at 24:00; 1460 renders as "24:20".
func FormatClock(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// AddMinutes adds delta minutes to an "HH:MM" clock string.
func AddMinutes(hhmm string, delta int) (string, error) {
	base, err := ParseClock(hhmm)
	if err != nil {
		return "", err
	}
	total := base + delta
	if total < 0 {
		return "", fmt.Errorf("%w: %s%+d minutes is before midnight", ErrMalformedTime, hhmm, delta)
	}
	return FormatClock(total), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
