package reconcile

import (
	"context"
	"errors"
	"fmt"

	"hoursync/config"
	"hoursync/internal/timeutil"
	"hoursync/ledger"
	"hoursync/timelog"
)

type Result struct {
	GroupsProcessed     int
	DaysAlreadyRecorded int
	SkippedGroups       []string
	UploadsAttempted    int
	UploadsSucceeded    int
	MinutesUploaded     int
}

type Options struct {
	DryRun bool
}

// Run executes one full reconciliation: resolve the staff id, aggregate
// local entries, drop days already recorded remotely, and upload the
// remainder. Staff resolution and remote day queries are fatal when they
// fail; individual upload failures are collected and returned after all
// requests were attempted.
func Run(
	ctx context.Context,
	client ledger.Client,
	cfg *config.Config,
	entries []timelog.Entry,
	options Options,
) (*Result, error) {
	result := &Result{SkippedGroups: []string{}}
	if len(entries) == 0 {
		return result, nil
	}

	staffID, err := client.ResolveStaffID(ctx, cfg.Ledger.StaffEmail)
	if err != nil {
		return nil, fmt.Errorf("resolve staff id: %w", err)
	}

	aggregated := Aggregate(entries)
	result.GroupsProcessed = len(aggregated)

	cache := NewDayCache(client, staffID)
	uploadable, skipped, alreadyRecorded, err := Filter(ctx, aggregated, cfg.MappingIndex(), cache)
	if err != nil {
		return nil, err
	}
	result.SkippedGroups = skipped
	result.DaysAlreadyRecorded = alreadyRecorded

	requests := BuildUploadRequests(uploadable, cfg.MappingIndex(), staffID)
	result.UploadsAttempted = len(requests)

	if options.DryRun {
		for _, request := range requests {
			result.MinutesUploaded += request.Minutes
		}
		result.UploadsSucceeded = len(requests)
		return result, nil
	}

	minutes, succeeded, uploadErr := Upload(ctx, client, requests)
	result.MinutesUploaded = minutes
	result.UploadsSucceeded = succeeded
	if uploadErr != nil {
		return result, uploadErr
	}
	return result, nil
}

// BuildUploadRequests turns the filtered totals into add-entry calls in
// sorted group-then-day order. Exactly one request per (group, day).
func BuildUploadRequests(
	uploadable map[string]map[string]DayTotal,
	mappings map[string]config.Mapping,
	staffID string,
) []ledger.AddEntryRequest {
	requests := make([]ledger.AddEntryRequest, 0, len(uploadable))
	for _, group := range sortedGroups(uploadable) {
		mapping := mappings[group]
		for _, dayKey := range sortedDayKeys(uploadable[group]) {
			total := uploadable[group][dayKey]
			requests = append(requests, ledger.AddEntryRequest{
				JobID:   mapping.JobID,
				TaskID:  mapping.TaskID,
				StaffID: staffID,
				Date:    total.DayKey,
				Minutes: timeutil.MinutesFromSeconds(total.Seconds),
				Note:    total.Note,
			})
		}
	}
	return requests
}

// Upload issues the add-entry calls sequentially. A failed call does not
// stop the remaining ones and its day is not marked as submitted; the
// failures are joined into the returned error. Minutes are only counted
// for calls that succeeded.
func Upload(ctx context.Context, client ledger.Client, requests []ledger.AddEntryRequest) (minutes, succeeded int, err error) {
	var failures []error
	for _, request := range requests {
		if addErr := client.AddEntry(ctx, request); addErr != nil {
			failures = append(failures, fmt.Errorf("upload day %s for task %s: %w", request.Date, request.TaskID, addErr))
			continue
		}
		minutes += request.Minutes
		succeeded++
	}
	return minutes, succeeded, errors.Join(failures...)
}
