package dataset

import "time"

// sampleDate is the reporting date shared by every builtin sample row.
var sampleDate = time.Date(2020, time.January, 4, 0, 0, 0, 0, time.UTC)

// BuiltinSample returns the 16-row fallback dataset used when no file
// is uploaded. It is a typed literal rather than parsed text, and it is
// always returned whole: the sampler never filters it.
func BuiltinSample() *Table {
	return NewTable([]Row{
		sampleRow("Niger", "AFR", nil, zero, nil, zero),
		sampleRow("Norway", "EUR", nil, zero, nil, zero),
		sampleRow("Palau", "WPR", zero, zero, zero, zero),
		sampleRow("Paraguay", "AMR", nil, zero, nil, zero),
		sampleRow("Pitcairn", "WPR", zero, zero, zero, zero),
		sampleRow("Saint Helena", "AFR", nil, zero, nil, zero),
		sampleRow("San Marino", "EUR", nil, zero, nil, zero),
		sampleRow("Serbia", "EUR", nil, zero, nil, zero),
		sampleRow("South Africa", "AFR", zero, zero, zero, zero),
		sampleRow("Spain", "EUR", zero, zero, zero, zero),
		sampleRow("Thailand", "SEAR", zero, zero, zero, zero),
		sampleRow("Vanuatu", "WPR", zero, zero, zero, zero),
		sampleRow("Venezuela (Bolivarian Republic of)", "AMR", nil, zero, nil, zero),
		sampleRow("Anguilla", "AMR", nil, zero, nil, zero),
		sampleRow("Azerbaijan", "EUR", nil, zero, nil, zero),
		sampleRow("Bhutan", "SEAR", zero, zero, zero, zero),
	})
}

// zero marks a reported zero count, as opposed to nil for a missing one.
var zero interface{} = int64(0)

func sampleRow(country, region string, newCases, cumCases, newDeaths, cumDeaths interface{}) Row {
	return Row{
		ColDateReported:     sampleDate,
		ColCountry:          country,
		ColWHORegion:        region,
		ColNewCases:         newCases,
		ColCumulativeCases:  cumCases,
		ColNewDeaths:        newDeaths,
		ColCumulativeDeaths: cumDeaths,
	}
}
