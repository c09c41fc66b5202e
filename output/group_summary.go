package output

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"hoursync/internal/timeutil"
	"hoursync/reconcile"
	"hoursync/timelog"
)

// GroupDaySummary is one exported row: all worked time for a billing
// group on one calendar day.
type GroupDaySummary struct {
	Group   string
	DayKey  string
	Minutes int
	Hours   float64
	Note    string
}

func BuildGroupDaySummaries(entries []timelog.Entry) []GroupDaySummary {
	if len(entries) == 0 {
		return []GroupDaySummary{}
	}

	aggregated := reconcile.Aggregate(entries)

	summaries := make([]GroupDaySummary, 0, len(aggregated))
	for _, group := range sortedKeys(aggregated) {
		days := aggregated[group]
		for _, dayKey := range sortedDayKeysOf(days) {
			total := days[dayKey]
			minutes := timeutil.MinutesFromSeconds(total.Seconds)
			summaries = append(summaries, GroupDaySummary{
				Group:   total.Group,
				DayKey:  total.DayKey,
				Minutes: minutes,
				Hours:   roundHours(float64(total.Seconds) / 3600.0),
				Note:    total.Note,
			})
		}
	}

	return summaries
}

func WriteGroupDaySummaries(path, format string, summaries []GroupDaySummary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeGroupDaySummariesCSV(path, summaries)
	case "excel", "xlsx":
		return writeGroupDaySummariesExcel(path, summaries)
	default:
		return fmt.Errorf("unsupported output format for summaries: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}

func sortedKeys(aggregated map[string]map[string]reconcile.DayTotal) []string {
	keys := make([]string, 0, len(aggregated))
	for key := range aggregated {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedDayKeysOf(days map[string]reconcile.DayTotal) []string {
	keys := make([]string, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
