package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hoursync/timelog"
)

func summaryEntries() []timelog.Entry {
	day1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)
	return []timelog.Entry{
		{Group: "beta", Start: day2, DurationSeconds: 2670, Note: "z"},
		{Group: "acme", Start: day1, DurationSeconds: 1800, Note: "x"},
		{Group: "acme", Start: day1.Add(time.Hour), DurationSeconds: 1800, Note: "y"},
	}
}

func TestBuildGroupDaySummaries(t *testing.T) {
	t.Parallel()

	summaries := BuildGroupDaySummaries(summaryEntries())
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summary rows, got %d", len(summaries))
	}

	first := summaries[0]
	if first.Group != "acme" || first.DayKey != "20240101" {
		t.Fatalf("expected acme/20240101 first, got %+v", first)
	}
	if first.Minutes != 60 {
		t.Fatalf("expected 60 minutes, got %d", first.Minutes)
	}
	if first.Hours != 1.0 {
		t.Fatalf("expected 1.00 hours, got %v", first.Hours)
	}
	if first.Note != "x\ny" {
		t.Fatalf("expected combined note, got %q", first.Note)
	}

	second := summaries[1]
	if second.Group != "beta" || second.Minutes != 45 {
		t.Fatalf("unexpected second row: %+v", second)
	}
}

func TestBuildGroupDaySummaries_Empty(t *testing.T) {
	t.Parallel()

	summaries := BuildGroupDaySummaries(nil)
	if len(summaries) != 0 {
		t.Fatalf("expected no rows, got %d", len(summaries))
	}
}

func TestWriteGroupDaySummaries_CSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summary.csv")
	summaries := BuildGroupDaySummaries(summaryEntries())
	if err := WriteGroupDaySummaries(path, "csv", summaries); err != nil {
		t.Fatalf("write csv summaries: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written csv: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read written csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "acme" || rows[1][2] != "60" {
		t.Fatalf("unexpected first data row: %v", rows[1])
	}
}

func TestWriteGroupDaySummaries_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	err := WriteGroupDaySummaries(filepath.Join(t.TempDir(), "x.out"), "pdf", nil)
	if err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
