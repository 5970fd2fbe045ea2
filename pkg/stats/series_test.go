package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

func dayRow(country string, day int, newCases int64) dataset.Row {
	return dataset.Row{
		dataset.ColDateReported: time.Date(2020, 3, day, 0, 0, 0, 0, time.UTC),
		dataset.ColCountry:      country,
		dataset.ColNewCases:     newCases,
	}
}

func TestCountrySeries_SortedByDate(t *testing.T) {
	table := dataset.NewTable([]dataset.Row{
		dayRow("Spain", 7, 3),
		dayRow("Thailand", 1, 9),
		dayRow("Spain", 2, 1),
		dayRow("Spain", 5, 2),
	})

	rows, err := CountrySeries(table, "Spain")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, int64(1), rows[0][dataset.ColNewCases])
	assert.Equal(t, int64(2), rows[1][dataset.ColNewCases])
	assert.Equal(t, int64(3), rows[2][dataset.ColNewCases])
}

func TestCountrySeries_MissingDatesSortLast(t *testing.T) {
	noDate := dataset.Row{
		dataset.ColCountry:  "Spain",
		dataset.ColNewCases: int64(42),
	}
	table := dataset.NewTable([]dataset.Row{
		noDate,
		dayRow("Spain", 3, 7),
	})

	rows, err := CountrySeries(table, "Spain")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(7), rows[0][dataset.ColNewCases])
	assert.Equal(t, int64(42), rows[1][dataset.ColNewCases])
}

func TestCountrySeries_NoSelection(t *testing.T) {
	table := dataset.NewTable([]dataset.Row{dayRow("Spain", 1, 1)})

	_, err := CountrySeries(table, "")

	var empty *dataset.ErrEmptySelection
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "", empty.Country)
}

func TestCountrySeries_UnknownCountry(t *testing.T) {
	table := dataset.NewTable([]dataset.Row{dayRow("Spain", 1, 1)})

	_, err := CountrySeries(table, "Palau")

	var empty *dataset.ErrEmptySelection
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "Palau", empty.Country)
}
