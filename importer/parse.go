package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

func parseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"02.01.2006 15:04",
	}

	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported datetime format: %q", value)
}

func parseDateAndTime(dateValue, timeValue string) (time.Time, error) {
	dateValue = strings.TrimSpace(dateValue)
	timeValue = strings.TrimSpace(timeValue)
	if dateValue == "" || timeValue == "" {
		return time.Time{}, fmt.Errorf("missing date or time")
	}

	datetime := dateValue + " " + timeValue
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"02.01.2006 15:04",
	}

	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, datetime, time.Local); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date/time format: %q", datetime)
}

// parseDurationSeconds accepts plain seconds ("5400"), decimal minutes
// ("90.5m"), decimal hours ("1.5h") or a clock duration ("01:30:00").
func parseDurationSeconds(raw string) (int, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, nil
	}

	if strings.Contains(cleaned, ":") {
		return parseClockDuration(cleaned)
	}

	unit := 1.0
	switch {
	case strings.HasSuffix(cleaned, "h"):
		unit = 3600
		cleaned = strings.TrimSuffix(cleaned, "h")
	case strings.HasSuffix(cleaned, "m"):
		unit = 60
		cleaned = strings.TrimSuffix(cleaned, "m")
	case strings.HasSuffix(cleaned, "s"):
		cleaned = strings.TrimSuffix(cleaned, "s")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", raw, err)
	}

	seconds := int(math.Round(value * unit))
	if seconds < 0 {
		return 0, fmt.Errorf("duration must not be negative")
	}
	return seconds, nil
}

// parseClockDuration parses H:MM or H:MM:SS durations.
func parseClockDuration(raw string) (int, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("unsupported clock duration %q", raw)
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		parsed, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, fmt.Errorf("parse clock duration %q: %w", raw, err)
		}
		if parsed < 0 {
			return 0, fmt.Errorf("clock duration must not be negative")
		}
		values[i] = parsed
	}

	seconds := values[0]*3600 + values[1]*60
	if len(values) == 3 {
		seconds += values[2]
	}
	return seconds, nil
}
