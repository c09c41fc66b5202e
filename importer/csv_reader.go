package importer

import (
	"encoding/csv"
	"fmt"
	"os"
)

type CSVReader struct{}

func (r *CSVReader) Read(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	parser := csv.NewReader(file)
	// Ragged rows are common in hand-edited exports; short rows read
	// as empty cells instead of failing the whole file.
	parser.FieldsPerRecord = -1

	rows, err := parser.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", path)
	}

	return NewTable(rows[0], rows[1:]), nil
}
