package importer

import (
	"fmt"

	"hoursync/timelog"
)

// GenericMapper maps column layouts of the form group/start/duration/note.
type GenericMapper struct{}

func (m *GenericMapper) Name() string {
	return "generic"
}

func (m *GenericMapper) Map(row Row, sourceFormat, sourceFile string) (*timelog.Entry, bool, error) {
	group := row.Cell("group", "billing group", "sheet", "project")
	if group == "" {
		return nil, false, nil
	}

	start, err := parseDateTime(row.Cell("start", "start datetime", "start time"))
	if err != nil {
		return nil, false, fmt.Errorf("row %d: parse start datetime: %w", row.Number, err)
	}

	seconds, err := parseDurationSeconds(row.Cell("duration", "duration seconds", "seconds"))
	if err != nil {
		return nil, false, fmt.Errorf("row %d: parse duration: %w", row.Number, err)
	}

	entry := &timelog.Entry{
		Group:           group,
		Start:           start,
		DurationSeconds: seconds,
		Note:            row.Cell("note", "description", "comment"),
		SourceFormat:    sourceFormat,
		SourceFile:      sourceFile,
	}

	return entry, true, nil
}
