package reader

import (
	"bytes"
	"encoding/csv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

// readDelimited parses comma- or tab-separated text. A UTF-8 BOM, if
// present, is stripped before parsing so the first header survives.
func readDelimited(data []byte, delimiter rune, format Format) (*dataset.Table, error) {
	decoder := unicode.UTF8BOM.NewDecoder()
	r := csv.NewReader(transform.NewReader(bytes.NewReader(data), decoder))
	r.Comma = delimiter
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, dataset.NewErrParse(format.String(), err.Error())
	}
	if len(records) == 0 {
		return nil, dataset.NewErrParse(format.String(), "input is empty")
	}

	return buildTable(records[0], records[1:])
}
