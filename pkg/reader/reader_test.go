package reader

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

const sampleCSV = `Date_reported,Country_code,Country,WHO_region,New_cases,Cumulative_cases,New_deaths,Cumulative_deaths
2020-03-01,ES,Spain,EUR,10,100,1,5
2020-03-02,ES,Spain,EUR,,110,,6
2020-03-01,TH,Thailand,SEAR,3,40,0,0
`

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name string
		want Format
	}{
		{"data.csv", FormatCSV},
		{"DATA.CSV", FormatCSV},
		{"noextension", FormatCSV},
		{"data.tsv", FormatTSV},
		{"data.txt", FormatTSV},
		{"data.xls", FormatExcel},
		{"data.XLSX", FormatExcel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectFormat(tc.name), tc.name)
	}
}

func TestRead_CSV(t *testing.T) {
	table, err := Read("upload.csv", []byte(sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 3, table.RowCount())
	require.Equal(t, 7, table.ColumnCount())

	// Extra source columns are dropped, schema order is canonical.
	assert.False(t, table.HasColumn("Country_code"))
	assert.Equal(t, dataset.ColDateReported, table.Columns[0].Name)

	first := table.Rows[0]
	assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), first[dataset.ColDateReported])
	assert.Equal(t, "Spain", first[dataset.ColCountry])
	// Counters stay raw until the coercion step.
	assert.Equal(t, "10", first[dataset.ColNewCases])

	// Empty cells are missing.
	second := table.Rows[1]
	assert.Nil(t, second[dataset.ColNewCases])
	assert.Equal(t, "110", second[dataset.ColCumulativeCases])
}

func TestRead_TSVViaTxtExtension(t *testing.T) {
	tsv := strings.ReplaceAll(sampleCSV, ",", "\t")
	table, err := Read("upload.txt", []byte(tsv))
	require.NoError(t, err)
	assert.Equal(t, 3, table.RowCount())
	assert.Equal(t, "Thailand", table.Rows[2][dataset.ColCountry])
}

func TestRead_StripsUTF8BOM(t *testing.T) {
	data := append([]byte("\xef\xbb\xbf"), []byte(sampleCSV)...)
	table, err := Read("upload.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 3, table.RowCount())
}

func TestRead_MissingColumn(t *testing.T) {
	csv := "Date_reported,WHO_region,New_cases,Cumulative_cases,New_deaths,Cumulative_deaths\n2020-03-01,EUR,1,2,3,4\n"
	_, err := Read("upload.csv", []byte(csv))

	var missing *dataset.ErrMissingColumns
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{dataset.ColCountry}, missing.Columns)
}

func TestRead_MalformedCSV(t *testing.T) {
	_, err := Read("upload.csv", []byte("Country,\"unclosed\n1,2\n"))

	var parse *dataset.ErrParse
	require.ErrorAs(t, err, &parse)
	assert.Equal(t, "csv", parse.Format)
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := Read("upload.csv", nil)

	var parse *dataset.ErrParse
	require.ErrorAs(t, err, &parse)
}

func TestRead_ShortRecordsFillMissing(t *testing.T) {
	csv := "Date_reported,Country,WHO_region,New_cases,Cumulative_cases,New_deaths,Cumulative_deaths\n2020-03-01,Spain\n"
	table, err := Read("upload.csv", []byte(csv))
	require.NoError(t, err)
	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "Spain", table.Rows[0][dataset.ColCountry])
	assert.Nil(t, table.Rows[0][dataset.ColCumulativeCases])
}

func TestRead_InvalidDateBecomesMissing(t *testing.T) {
	csv := "Date_reported,Country,WHO_region,New_cases,Cumulative_cases,New_deaths,Cumulative_deaths\nnot-a-date,Spain,EUR,1,2,3,4\n"
	table, err := Read("upload.csv", []byte(csv))
	require.NoError(t, err)
	assert.Nil(t, table.Rows[0][dataset.ColDateReported])
}

func TestRead_Workbook(t *testing.T) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	rows := [][]interface{}{
		{"Date_reported", "Country", "WHO_region", "New_cases", "Cumulative_cases", "New_deaths", "Cumulative_deaths"},
		{"2020-03-01", "Spain", "EUR", 10, 100, 1, 5},
		{"2020-03-02", "Spain", "EUR", nil, 110, nil, 6},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	require.NoError(t, file.Close())

	table, err := Read("upload.xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), table.Rows[0][dataset.ColDateReported])
	assert.Equal(t, "100", table.Rows[0][dataset.ColCumulativeCases])
	assert.Nil(t, table.Rows[1][dataset.ColNewCases])
}

func TestRead_WorkbookGarbage(t *testing.T) {
	_, err := Read("upload.xlsx", []byte("this is not a workbook"))

	var parse *dataset.ErrParse
	require.ErrorAs(t, err, &parse)
	assert.Equal(t, "excel", parse.Format)
}

func TestRead_WorkbookMissingColumn(t *testing.T) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	header := []interface{}{"Date_reported", "WHO_region"}
	require.NoError(t, file.SetSheetRow(sheet, "A1", &header))
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	require.NoError(t, file.Close())

	_, err := Read("upload.xlsx", buf.Bytes())

	var missing *dataset.ErrMissingColumns
	require.True(t, errors.As(err, &missing))
	assert.Contains(t, missing.Columns, dataset.ColCountry)
}
