// Package stats aggregates sampled tables for the preview.
package stats

import (
	"sort"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

// TopLimit is how many countries the ranked aggregate keeps.
const TopLimit = 10

// CountryTotal is one row of the ranked aggregate: a country and the
// largest cumulative case count seen for it in the sample.
type CountryTotal struct {
	Country         string `json:"country"`
	CumulativeCases int64  `json:"cumulative_cases"`
}

// TopCountries groups rows by country, takes the per-group maximum of
// Cumulative_cases (a group with only missing values counts as 0; the
// input table is not mutated) and returns at most limit groups sorted
// by that maximum, descending, ties alphabetical. Rows with a missing
// country are excluded. When the table lacks the Cumulative_cases
// column entirely it returns *dataset.ErrColumnUnavailable, and the
// caller renders a textual fallback instead of a chart.
func TopCountries(t *dataset.Table, limit int) ([]CountryTotal, error) {
	if !t.HasColumn(dataset.ColCumulativeCases) {
		return nil, dataset.NewErrColumnUnavailable(dataset.ColCumulativeCases)
	}

	maxByCountry := make(map[string]int64)
	for _, row := range t.Rows {
		country, ok := row[dataset.ColCountry].(string)
		if !ok || country == "" {
			continue
		}
		value := asInt64(row[dataset.ColCumulativeCases])
		if current, seen := maxByCountry[country]; !seen || value > current {
			maxByCountry[country] = value
		}
	}

	totals := make([]CountryTotal, 0, len(maxByCountry))
	for country, value := range maxByCountry {
		totals = append(totals, CountryTotal{Country: country, CumulativeCases: value})
	}
	// Alphabetical pre-sort plus a stable value sort keeps tie order
	// deterministic across runs.
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Country < totals[j].Country
	})
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].CumulativeCases > totals[j].CumulativeCases
	})

	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals, nil
}

// asInt64 reads a coerced counter cell, treating missing as 0 for the
// purpose of the maximum.
func asInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
