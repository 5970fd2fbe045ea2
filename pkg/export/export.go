// Package export serializes a sampled table into the three download
// payloads.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

// Download MIME types.
const (
	MIMECSV  = "text/csv"
	MIMETSV  = "text/tab-separated-values"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Bundle holds the three payloads for one sampled table. All three are
// derived from the same stringified snapshot, so they always carry
// identical row content and order.
type Bundle struct {
	CSV     []byte
	TSV     []byte
	XLSX    []byte
	Percent int
}

// FileName returns the deterministic download name for a format
// ("csv", "tsv" or "xlsx").
func (b *Bundle) FileName(format string) string {
	return fmt.Sprintf("covid_sample_%dpercent.%s", b.Percent, format)
}

// MIMEType returns the MIME type for a format.
func MIMEType(format string) string {
	switch format {
	case "tsv":
		return MIMETSV
	case "xlsx":
		return MIMEXLSX
	default:
		return MIMECSV
	}
}

// Build produces the CSV, TSV and xlsx payloads. Dates are rendered as
// YYYY-MM-DD text, missing counters as empty cells, with a header row
// and no index column.
func Build(t *dataset.Table, percent int) (*Bundle, error) {
	records := Records(t)

	csvBytes, err := delimited(records, ',')
	if err != nil {
		return nil, fmt.Errorf("failed to build CSV payload: %w", err)
	}
	tsvBytes, err := delimited(records, '\t')
	if err != nil {
		return nil, fmt.Errorf("failed to build TSV payload: %w", err)
	}
	xlsxBytes, err := workbook(t, records)
	if err != nil {
		return nil, fmt.Errorf("failed to build xlsx payload: %w", err)
	}

	return &Bundle{
		CSV:     csvBytes,
		TSV:     tsvBytes,
		XLSX:    xlsxBytes,
		Percent: percent,
	}, nil
}

// Records stringifies the table once: header row first, then one record
// per row in schema column order.
func Records(t *dataset.Table) [][]string {
	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Name
	}

	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, header)
	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			record[i] = cellString(row[col.Name])
		}
		records = append(records, record)
	}
	return records
}

func cellString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func delimited(records [][]string, delimiter rune) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = delimiter
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// workbook writes a single-sheet xlsx. Counter cells are written as
// numbers (so spreadsheet software sees numeric columns) and display
// exactly as the delimited payloads do; everything else is text.
func workbook(t *dataset.Table, records [][]string) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()
	sheet := file.GetSheetName(0)

	numeric := make(map[int]bool)
	for i, col := range t.Columns {
		if col.Type == dataset.TypeInt64 {
			numeric[i] = true
		}
	}

	for i, record := range records {
		cells := make([]interface{}, len(record))
		for j, value := range record {
			switch {
			case value == "":
				cells[j] = nil
			case i > 0 && numeric[j]:
				n, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					cells[j] = value
					continue
				}
				cells[j] = n
			default:
				cells[j] = value
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := file.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
