package dataset

import (
	"sort"
	"time"
)

// Row holds one record keyed by column name. Cell values are nil
// (missing), string (raw, pre-coercion), int64 (coerced counter) or
// time.Time (parsed date).
type Row map[string]interface{}

// Table is an ordered sequence of rows sharing the row schema.
type Table struct {
	Columns []ColumnInfo `json:"columns"`
	Rows    []Row        `json:"rows"`
}

// NewTable creates a Table over the canonical schema columns.
func NewTable(rows []Row) *Table {
	return &Table{
		Columns: SchemaColumns(),
		Rows:    rows,
	}
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col.Name == name {
			return true
		}
	}
	return false
}

// Head returns the first n rows (fewer when the table is smaller).
func (t *Table) Head(n int) []Row {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// Countries returns the sorted distinct country names present in the
// table. Rows with a missing country are skipped.
func (t *Table) Countries() []string {
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		if name, ok := row[ColCountry].(string); ok && name != "" {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DateOf returns the parsed date cell of a row, if present.
func (r Row) DateOf(column string) (time.Time, bool) {
	d, ok := r[column].(time.Time)
	return d, ok
}
