package reconcile

import (
	"sort"
	"strings"

	"hoursync/config"
	"hoursync/internal/timeutil"
	"hoursync/timelog"
)

// DayTotal is all worked time for one (group, day) collapsed into a
// single record ready for upload.
type DayTotal struct {
	Group   string
	DayKey  string
	Seconds int
	Note    string
}

// Aggregate collapses entries into group -> dayKey -> total. Seconds sum
// arithmetically; notes concatenate newline-separated in encounter order,
// skipping blank notes only while the accumulated note is still empty.
// Entries with zero duration or empty note are never dropped.
func Aggregate(entries []timelog.Entry) map[string]map[string]DayTotal {
	out := make(map[string]map[string]DayTotal)
	for _, entry := range entries {
		group := config.NormalizeGroup(entry.Group)
		dayKey := timeutil.DayKey(entry.Start)

		days, ok := out[group]
		if !ok {
			days = make(map[string]DayTotal)
			out[group] = days
		}

		total := days[dayKey]
		total.Group = group
		total.DayKey = dayKey
		total.Seconds += entry.DurationSeconds
		total.Note = appendNote(total.Note, entry.Note)
		days[dayKey] = total
	}
	return out
}

func appendNote(accumulated, next string) string {
	if accumulated == "" {
		if strings.TrimSpace(next) == "" {
			return accumulated
		}
		return next
	}
	return accumulated + "\n" + next
}

func sortedGroups(aggregated map[string]map[string]DayTotal) []string {
	groups := make([]string, 0, len(aggregated))
	for group := range aggregated {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups
}

func sortedDayKeys(days map[string]DayTotal) []string {
	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
