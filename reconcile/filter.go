package reconcile

import (
	"context"
	"fmt"
	"strings"

	"hoursync/config"
)

// Filter drops every aggregated day the ledger already holds an entry for.
//
// Groups without a configured mapping are collected in skipped and their
// days are never queried remotely. A day is dropped when any remote record
// for that day carries the group's task id; date range or note content on
// the remote side is irrelevant. Groups whose every day is dropped are
// pruned from the result. A failed remote query aborts the filter, since
// no upload decision can be made safely without it.
func Filter(
	ctx context.Context,
	aggregated map[string]map[string]DayTotal,
	mappings map[string]config.Mapping,
	cache *DayCache,
) (uploadable map[string]map[string]DayTotal, skipped []string, alreadyRecorded int, err error) {
	uploadable = make(map[string]map[string]DayTotal, len(aggregated))
	skipped = make([]string, 0)

	for _, group := range sortedGroups(aggregated) {
		mapping, mapped := mappings[group]
		if !mapped {
			skipped = append(skipped, group)
			continue
		}

		kept := make(map[string]DayTotal)
		for _, dayKey := range sortedDayKeys(aggregated[group]) {
			records, fetchErr := cache.Fetch(ctx, dayKey)
			if fetchErr != nil {
				return nil, nil, 0, fmt.Errorf("query ledger for day %s: %w", dayKey, fetchErr)
			}

			recorded := false
			for _, record := range records {
				if strings.TrimSpace(record.TaskID) == strings.TrimSpace(mapping.TaskID) {
					recorded = true
					break
				}
			}
			if recorded {
				alreadyRecorded++
				continue
			}
			kept[dayKey] = aggregated[group][dayKey]
		}

		if len(kept) > 0 {
			uploadable[group] = kept
		}
	}

	return uploadable, skipped, alreadyRecorded, nil
}
