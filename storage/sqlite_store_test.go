package storage

import (
	"path/filepath"
	"testing"
	"time"

	"hoursync/timelog"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "hoursync_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustParseRFC3339(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func TestSQLiteStore_InsertAndListRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	entries := []timelog.Entry{
		{
			Group:           "acme",
			Start:           mustParseRFC3339(t, "2024-01-01T09:00:00+01:00"),
			DurationSeconds: 1800,
			Note:            "morning work",
			SourceFormat:    "csv",
			SourceFile:      "entries.csv",
		},
		{
			Group:           "beta",
			Start:           mustParseRFC3339(t, "2024-01-01T11:00:00+01:00"),
			DurationSeconds: 0,
			Note:            "",
			SourceFormat:    "csv",
			SourceFile:      "entries.csv",
		},
	}

	inserted, err := store.InsertEntries(entries)
	if err != nil {
		t.Fatalf("insert entries: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", inserted)
	}

	listed, err := store.ListEntries()
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 stored rows, got %d", len(listed))
	}
	if listed[0].Group != "acme" || listed[0].DurationSeconds != 1800 {
		t.Fatalf("unexpected first row: %+v", listed[0])
	}
	if !listed[0].Start.Equal(entries[0].Start) {
		t.Fatalf("expected start %v, got %v", entries[0].Start, listed[0].Start)
	}
}

func TestSQLiteStore_ReimportIsIgnored(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	entry := timelog.Entry{
		Group:           "acme",
		Start:           mustParseRFC3339(t, "2024-01-01T09:00:00+01:00"),
		DurationSeconds: 1800,
		Note:            "same logical work",
		SourceFormat:    "csv",
		SourceFile:      "entries.csv",
	}

	if _, err := store.InsertEntries([]timelog.Entry{entry}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	inserted, err := store.InsertEntries([]timelog.Entry{entry})
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected duplicate row to be ignored, got %d inserted", inserted)
	}

	listed, err := store.ListEntries()
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 stored row, got %d", len(listed))
	}
}

func TestSQLiteStore_AllowsSameEntryFromDifferentSources(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	base := timelog.Entry{
		Group:           "acme",
		Start:           mustParseRFC3339(t, "2024-01-01T09:00:00+01:00"),
		DurationSeconds: 1800,
		Note:            "same logical work",
		SourceFormat:    "csv",
	}
	first := base
	first.SourceFile = "january.csv"
	second := base
	second.SourceFile = "january.xlsx"

	inserted, err := store.InsertEntries([]timelog.Entry{first, second})
	if err != nil {
		t.Fatalf("insert entries: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", inserted)
	}
}

func TestSQLiteStore_DeleteAllEntries(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	entries := []timelog.Entry{
		{Group: "a", Start: mustParseRFC3339(t, "2024-01-01T09:00:00+01:00"), DurationSeconds: 60, SourceFile: "a.csv"},
		{Group: "b", Start: mustParseRFC3339(t, "2024-01-02T09:00:00+01:00"), DurationSeconds: 120, SourceFile: "b.csv"},
	}
	if _, err := store.InsertEntries(entries); err != nil {
		t.Fatalf("insert entries: %v", err)
	}

	deleted, err := store.DeleteAllEntries()
	if err != nil {
		t.Fatalf("delete all entries: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deleted rows, got %d", deleted)
	}

	listed, err := store.ListEntries()
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty store, got %d rows", len(listed))
	}
}
