package reconcile

import (
	"context"
	"fmt"

	"hoursync/ledger"
)

// fakeLedger implements ledger.Client against an in-memory record set.
type fakeLedger struct {
	staffID      string
	staffErr     error
	records      map[string][]ledger.DayRecord
	fetchCalls   map[string]int
	fetchErr     error
	addErrByDate map[string]error
	added        []ledger.AddEntryRequest
	recordOnAdd  bool
}

func newFakeLedger(staffID string) *fakeLedger {
	return &fakeLedger{
		staffID:      staffID,
		records:      make(map[string][]ledger.DayRecord),
		fetchCalls:   make(map[string]int),
		addErrByDate: make(map[string]error),
	}
}

func (f *fakeLedger) ResolveStaffID(_ context.Context, email string) (string, error) {
	if f.staffErr != nil {
		return "", f.staffErr
	}
	if f.staffID == "" {
		return "", fmt.Errorf("staff member with email %q not found in ledger", email)
	}
	return f.staffID, nil
}

func (f *fakeLedger) GetDayEntries(_ context.Context, _, dayKey string) ([]ledger.DayRecord, error) {
	f.fetchCalls[dayKey]++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.records[dayKey], nil
}

func (f *fakeLedger) AddEntry(_ context.Context, entry ledger.AddEntryRequest) error {
	if err := f.addErrByDate[entry.Date]; err != nil {
		return err
	}
	f.added = append(f.added, entry)
	if f.recordOnAdd {
		f.records[entry.Date] = append(f.records[entry.Date], ledger.DayRecord{
			JobID:   entry.JobID,
			TaskID:  entry.TaskID,
			Date:    entry.Date,
			Minutes: entry.Minutes,
			Note:    entry.Note,
		})
	}
	return nil
}

func (f *fakeLedger) totalFetchCalls() int {
	total := 0
	for _, count := range f.fetchCalls {
		total += count
	}
	return total
}
