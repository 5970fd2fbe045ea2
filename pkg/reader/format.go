package reader

import (
	"path/filepath"
	"strings"
)

// Format identifies the tabular input format selected for a source.
type Format string

const (
	// FormatCSV comma-delimited text.
	FormatCSV Format = "csv"
	// FormatTSV tab-delimited text.
	FormatTSV Format = "tsv"
	// FormatExcel xlsx workbook.
	FormatExcel Format = "excel"
)

// String returns the format's string representation.
func (f Format) String() string {
	return string(f)
}

// DetectFormat selects the parser from the source file name. Extensions
// .xls/.xlsx route to the spreadsheet parser, .tsv/.txt to tab-delimited
// text, and everything else defaults to comma-delimited text.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xls", ".xlsx":
		return FormatExcel
	case ".tsv", ".txt":
		return FormatTSV
	default:
		return FormatCSV
	}
}
