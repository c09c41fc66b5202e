package reconcile

import (
	"context"

	"hoursync/ledger"
)

// DayCache serves remote day queries for one sync run, asking the ledger
// at most once per day regardless of how many groups touch that day.
// A run is bound to a single resolved staff id, so the cache keys by
// day only. Never invalidated within a run.
type DayCache struct {
	client  ledger.Client
	staffID string
	byDay   map[string][]ledger.DayRecord
}

func NewDayCache(client ledger.Client, staffID string) *DayCache {
	return &DayCache{
		client:  client,
		staffID: staffID,
		byDay:   make(map[string][]ledger.DayRecord),
	}
}

func (c *DayCache) Fetch(ctx context.Context, dayKey string) ([]ledger.DayRecord, error) {
	if records, ok := c.byDay[dayKey]; ok {
		return records, nil
	}

	records, err := c.client.GetDayEntries(ctx, c.staffID, dayKey)
	if err != nil {
		return nil, err
	}
	c.byDay[dayKey] = records
	return records, nil
}
