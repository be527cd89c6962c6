package importer

import (
	"fmt"
	"strings"
)

// Dataset is a rectangular, string-typed view of an uploaded file.
// Every row has exactly len(Columns) cells.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// RowCount returns the number of data rows, header excluded.
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// ColumnIndex returns the position of the named column, or -1 when the
// dataset has no such column. Duplicated header names resolve to the
// first occurrence.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all cell values of the named column in row order.
// Unknown columns yield nil.
func (d *Dataset) Column(name string) []string {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[idx]
	}
	return values
}

// Preview returns up to n rows as column-keyed maps, the shape the
// mapping screen consumes.
func (d *Dataset) Preview(n int) []map[string]string {
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	out := make([]map[string]string, 0, n)
	for _, row := range d.Rows[:n] {
		m := make(map[string]string, len(d.Columns))
		for i, c := range d.Columns {
			m[c] = row[i]
		}
		out = append(out, m)
	}
	return out
}

// normalizeHeader replaces unusable header names with a readable
// placeholder. Pandas-style "Unnamed: N" leftovers and empty cells both
// become "(sem nome N)" with a running counter.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	empty := 0
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" || strings.HasPrefix(strings.ToLower(name), "unnamed:") {
			empty++
			out[i] = fmt.Sprintf("(sem nome %d)", empty)
			continue
		}
		out[i] = raw
	}
	return out
}

// allBlank reports whether every cell is empty after trimming. Unlike
// normalization.IsBlank this keeps literal "nan" cells, so a row of
// exported placeholders still reaches the analyzer and is reported
// there instead of silently disappearing during import.
func allBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
