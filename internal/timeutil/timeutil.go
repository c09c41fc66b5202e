package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const dayKeyLayout = "20060102"

// DayKey formats a timestamp as the 8-digit calendar day used for
// aggregation keys and remote day queries.
func DayKey(value time.Time) string {
	return value.Format(dayKeyLayout)
}

func ParseDayKey(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dayKeyLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", value, err)
	}
	return parsed, nil
}

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MinutesFromSeconds rounds seconds to whole minutes, half up.
// Callers only pass non-negative durations.
func MinutesFromSeconds(seconds int) int {
	return (seconds + 30) / 60
}
