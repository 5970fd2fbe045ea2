package dataset

import (
	"fmt"
	"strings"
)

// ErrMissingColumns reports that a source file lacks required schema
// columns.
type ErrMissingColumns struct {
	Columns []string
}

func (e *ErrMissingColumns) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// ErrParse reports that a byte stream is not valid for the selected
// format.
type ErrParse struct {
	Format string
	Reason string
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("cannot parse %s input: %s", e.Format, e.Reason)
}

// ErrEmptySelection reports that a country selection matched no rows.
// Non-fatal: callers render an informational message instead of a chart.
type ErrEmptySelection struct {
	Country string
}

func (e *ErrEmptySelection) Error() string {
	if e.Country == "" {
		return "no country selected"
	}
	return fmt.Sprintf("no rows for country %s in the sample", e.Country)
}

// ErrColumnUnavailable reports that an aggregation column is absent
// from the table, so no aggregate can be produced.
type ErrColumnUnavailable struct {
	Column string
}

func (e *ErrColumnUnavailable) Error() string {
	return fmt.Sprintf("column %s not available in table", e.Column)
}

// NewErrMissingColumns creates a missing columns error.
func NewErrMissingColumns(columns []string) *ErrMissingColumns {
	return &ErrMissingColumns{Columns: columns}
}

// NewErrParse creates a parse error.
func NewErrParse(format, reason string) *ErrParse {
	return &ErrParse{Format: format, Reason: reason}
}

// NewErrEmptySelection creates an empty selection error.
func NewErrEmptySelection(country string) *ErrEmptySelection {
	return &ErrEmptySelection{Country: country}
}

// NewErrColumnUnavailable creates a column unavailable error.
func NewErrColumnUnavailable(column string) *ErrColumnUnavailable {
	return &ErrColumnUnavailable{Column: column}
}
