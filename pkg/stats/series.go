package stats

import (
	"sort"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

// CountrySeries returns the selected country's rows ordered by
// Date_reported, for the trend chart. Rows without a parsed date sort
// last. An empty country name, or a country with no rows in the sample,
// yields *dataset.ErrEmptySelection.
func CountrySeries(t *dataset.Table, country string) ([]dataset.Row, error) {
	if country == "" {
		return nil, dataset.NewErrEmptySelection("")
	}

	var rows []dataset.Row
	for _, row := range t.Rows {
		if name, ok := row[dataset.ColCountry].(string); ok && name == country {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, dataset.NewErrEmptySelection(country)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		di, iok := rows[i].DateOf(dataset.ColDateReported)
		dj, jok := rows[j].DateOf(dataset.ColDateReported)
		if iok != jok {
			return iok
		}
		return di.Before(dj)
	})
	return rows, nil
}
