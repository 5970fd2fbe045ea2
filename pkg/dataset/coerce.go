package dataset

import (
	"math"
	"strconv"
	"strings"
)

// CoerceNumeric returns a new table in which the four counter columns
// hold int64 values. Cells that cannot be coerced become missing (nil),
// never zero. The input table is not mutated, and the operation is
// idempotent: coercing an already-coerced table yields equal values.
func CoerceNumeric(t *Table) *Table {
	numeric := NumericColumns()
	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		coerced := make(Row, len(row))
		for name, value := range row {
			coerced[name] = value
		}
		for _, name := range numeric {
			coerced[name] = coerceCell(row[name])
		}
		rows[i] = coerced
	}
	return &Table{Columns: t.Columns, Rows: rows}
}

// coerceCell converts a raw cell to int64. The schema declares the
// counters as non-negative, so negatives count as invalid.
func coerceCell(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case int64:
		if v < 0 {
			return nil
		}
		return v
	case int:
		if v < 0 {
			return nil
		}
		return int64(v)
	case float64:
		if v < 0 || v != math.Trunc(v) {
			return nil
		}
		return int64(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			if n < 0 {
				return nil
			}
			return n
		}
		// Whole-valued floats ("120.0") still count as integers.
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && f >= 0 && f == math.Trunc(f) {
			return int64(f)
		}
		return nil
	default:
		return nil
	}
}
