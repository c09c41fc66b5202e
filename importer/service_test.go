package importer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestRun_ImportsGenericCSV(t *testing.T) {
	t.Parallel()

	path := writeTempCSV(t, "entries.csv", `Group,Start,Duration,Note
acme-dev,2024-01-01 09:00,1:30:00,pairing
acme-dev,2024-01-01 14:00,3600,review
,2024-01-01 16:00,3600,no group
`)

	mapper, err := MapperByName("generic")
	if err != nil {
		t.Fatalf("mapper by name: %v", err)
	}

	result, err := Run([]string{path}, "", mapper)
	if err != nil {
		t.Fatalf("run import: %v", err)
	}

	if result.FilesProcessed != 1 {
		t.Fatalf("expected 1 file processed, got %d", result.FilesProcessed)
	}
	if result.RowsRead != 3 {
		t.Fatalf("expected 3 rows read, got %d", result.RowsRead)
	}
	if result.RowsMapped != 2 {
		t.Fatalf("expected 2 rows mapped, got %d", result.RowsMapped)
	}
	if result.RowsSkipped != 1 {
		t.Fatalf("expected 1 row skipped, got %d", result.RowsSkipped)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	if result.Entries[0].DurationSeconds != 5400 || result.Entries[1].DurationSeconds != 3600 {
		t.Fatalf("unexpected durations: %+v", result.Entries)
	}
}

func TestRun_UnsupportedExtensionIsAnError(t *testing.T) {
	t.Parallel()

	mapper, err := MapperByName("generic")
	if err != nil {
		t.Fatalf("mapper by name: %v", err)
	}

	if _, err := Run([]string{"entries.txt"}, "", mapper); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestMapperByName(t *testing.T) {
	t.Parallel()

	for _, name := range SupportedMapperNames() {
		mapper, err := MapperByName(name)
		if err != nil {
			t.Fatalf("mapper %q: %v", name, err)
		}
		if mapper.Name() != name {
			t.Fatalf("expected mapper name %q, got %q", name, mapper.Name())
		}
	}

	if _, err := MapperByName("jira"); err == nil {
		t.Fatalf("expected error for unsupported mapper")
	}
}
