package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

func writeGroupDaySummariesCSV(path string, summaries []GroupDaySummary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Group", "Day", "Minutes", "Hours", "Note"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			summary.Group,
			summary.DayKey,
			strconv.Itoa(summary.Minutes),
			fmt.Sprintf("%.2f", summary.Hours),
			summary.Note,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	return nil
}
