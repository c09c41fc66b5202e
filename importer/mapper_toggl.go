package importer

import (
	"fmt"

	"hoursync/timelog"
)

// TogglMapper maps the Toggl "detailed report" CSV export layout
// (Project, Start date, Start time, Duration HH:MM:SS, Description).
type TogglMapper struct{}

func (m *TogglMapper) Name() string {
	return "toggl"
}

func (m *TogglMapper) Map(row Row, sourceFormat, sourceFile string) (*timelog.Entry, bool, error) {
	group := row.Cell("project")
	if group == "" {
		return nil, false, nil
	}

	start, err := parseDateAndTime(row.Cell("start date"), row.Cell("start time"))
	if err != nil {
		return nil, false, fmt.Errorf("row %d: parse start: %w", row.Number, err)
	}

	rawDuration := row.Cell("duration")
	if rawDuration == "" {
		return nil, false, fmt.Errorf("row %d: missing duration", row.Number)
	}
	seconds, err := parseClockDuration(rawDuration)
	if err != nil {
		return nil, false, fmt.Errorf("row %d: parse duration: %w", row.Number, err)
	}

	entry := &timelog.Entry{
		Group:           group,
		Start:           start,
		DurationSeconds: seconds,
		Note:            row.Cell("description"),
		SourceFormat:    sourceFormat,
		SourceFile:      sourceFile,
	}

	return entry, true, nil
}
