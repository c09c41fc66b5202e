package importer

import (
	"fmt"
	"strings"
)

// A Reader parses one input file into a Table.
type Reader interface {
	Read(path string) (*Table, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	}
	return nil, fmt.Errorf("unsupported input format: %s", format)
}
