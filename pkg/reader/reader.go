// Package reader parses CSV, TSV and xlsx byte streams into tables
// restricted to the fixed row schema. It keeps no state across calls.
package reader

import (
	"strings"
	"time"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

// Read parses a source byte stream into a Table. The format is selected
// from the file name; the result carries exactly the schema columns, in
// schema order, with Date_reported parsed to a calendar date. Missing
// schema columns yield *dataset.ErrMissingColumns, malformed bytes
// *dataset.ErrParse.
func Read(name string, data []byte) (*dataset.Table, error) {
	switch DetectFormat(name) {
	case FormatExcel:
		return readWorkbook(data)
	case FormatTSV:
		return readDelimited(data, '\t', FormatTSV)
	default:
		return readDelimited(data, ',', FormatCSV)
	}
}

// dateLayouts are tried in order when parsing Date_reported cells.
// The short layout covers excelize's default date display format.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// buildTable maps raw records onto the schema. Column order in the
// source is irrelevant; extra columns are dropped. Unparseable or empty
// cells become missing, except that the date column is parsed eagerly.
func buildTable(headers []string, records [][]string) (*dataset.Table, error) {
	index := make(map[string]int, len(headers))
	for i, header := range headers {
		index[strings.TrimSpace(header)] = i
	}

	var missing []string
	for _, col := range dataset.SchemaColumns() {
		if _, ok := index[col.Name]; !ok {
			missing = append(missing, col.Name)
		}
	}
	if len(missing) > 0 {
		return nil, dataset.NewErrMissingColumns(missing)
	}

	rows := make([]dataset.Row, len(records))
	for i, record := range records {
		row := make(dataset.Row, len(index))
		for _, col := range dataset.SchemaColumns() {
			pos := index[col.Name]
			if pos >= len(record) {
				// Short records fill with missing, as the CSV reader
				// does not pad them.
				row[col.Name] = nil
				continue
			}
			row[col.Name] = parseCell(col, record[pos])
		}
		rows[i] = row
	}
	return dataset.NewTable(rows), nil
}

func parseCell(col dataset.ColumnInfo, raw string) interface{} {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	if col.Type == dataset.TypeDate {
		if d, ok := parseDate(value); ok {
			return d
		}
		return nil
	}
	// Counter columns stay raw here; coercion is a separate step that
	// runs after sampling.
	return value
}
