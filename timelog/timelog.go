package timelog

import "time"

// Entry is the normalized time record used across importers, storage and sync.
type Entry struct {
	ID              int64
	Group           string
	Start           time.Time
	DurationSeconds int
	Note            string
	SourceFormat    string
	SourceFile      string
}
