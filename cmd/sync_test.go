package cmd

import (
	"testing"
	"time"

	"hoursync/timelog"
)

func TestParseSyncRange(t *testing.T) {
	t.Parallel()

	from, to, err := parseSyncRange("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("parse range: %v", err)
	}
	if from == nil || to == nil {
		t.Fatalf("expected both bounds to be set")
	}
	if from.Day() != 1 || to.Day() != 31 {
		t.Fatalf("unexpected bounds: %v - %v", from, to)
	}

	if _, _, err := parseSyncRange("2024-02-01", "2024-01-01"); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	if _, _, err := parseSyncRange("01.01.2024", ""); err == nil {
		t.Fatalf("expected error for unsupported date format")
	}

	from, to, err = parseSyncRange("", "")
	if err != nil {
		t.Fatalf("parse empty range: %v", err)
	}
	if from != nil || to != nil {
		t.Fatalf("expected open range")
	}
}

func TestFilterEntriesByDayRange(t *testing.T) {
	t.Parallel()

	entries := []timelog.Entry{
		{Group: "a", Start: time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)},
		{Group: "a", Start: time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)},
		{Group: "a", Start: time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)},
	}

	from, to, err := parseSyncRange("2024-01-02", "2024-01-31")
	if err != nil {
		t.Fatalf("parse range: %v", err)
	}

	filtered := filterEntriesByDayRange(entries, from, to)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 entry in range, got %d", len(filtered))
	}
	if filtered[0].Start.Day() != 15 {
		t.Fatalf("unexpected entry kept: %+v", filtered[0])
	}

	all := filterEntriesByDayRange(entries, nil, nil)
	if len(all) != 3 {
		t.Fatalf("expected all entries for open range, got %d", len(all))
	}
}
