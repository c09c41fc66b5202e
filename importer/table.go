package importer

import "strings"

// Table is the parsed contents of one input file: the header row and
// the data rows below it. Column lookup is case-insensitive and
// ignores spaces, dashes and underscores, so "Start date", "start_date"
// and "StartDate" all address the same column.
type Table struct {
	columns map[string]int
	rows    [][]string
}

func NewTable(header []string, rows [][]string) *Table {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := columnKey(name)
		if key == "" {
			continue
		}
		if _, taken := columns[key]; !taken {
			columns[key] = i
		}
	}
	return &Table{columns: columns, rows: rows}
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th data row. Row numbers are 1-based and count the
// header, matching what a spreadsheet shows for the same line.
func (t *Table) Row(i int) Row {
	return Row{Number: i + 2, table: t, cells: t.rows[i]}
}

type Row struct {
	Number int
	table  *Table
	cells  []string
}

// Cell returns the trimmed value under the first of the given column
// names that exists in the header, or "" when none do. Rows shorter
// than the header read as empty cells.
func (r Row) Cell(names ...string) string {
	for _, name := range names {
		index, ok := r.table.columns[columnKey(name)]
		if !ok {
			continue
		}
		if index >= len(r.cells) {
			return ""
		}
		return strings.TrimSpace(r.cells[index])
	}
	return ""
}

func columnKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, cut := range []string{" ", "_", "-"} {
		key = strings.ReplaceAll(key, cut, "")
	}
	return key
}
