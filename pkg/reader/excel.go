package reader

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

// readWorkbook parses an xlsx workbook, reading the first sheet. Legacy
// .xls files are not OOXML and surface here as a parse error.
func readWorkbook(data []byte) (*dataset.Table, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, dataset.NewErrParse(FormatExcel.String(), err.Error())
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, dataset.NewErrParse(FormatExcel.String(), "no sheets found in workbook")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, dataset.NewErrParse(FormatExcel.String(), err.Error())
	}
	if len(rows) == 0 {
		return nil, dataset.NewErrParse(FormatExcel.String(), "sheet is empty")
	}

	return buildTable(rows[0], rows[1:])
}
