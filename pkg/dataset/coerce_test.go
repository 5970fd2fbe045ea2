package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRow(country string, newCases, cumCases interface{}) Row {
	return Row{
		ColDateReported:     sampleDate,
		ColCountry:          country,
		ColWHORegion:        "EUR",
		ColNewCases:         newCases,
		ColCumulativeCases:  cumCases,
		ColNewDeaths:        nil,
		ColCumulativeDeaths: nil,
	}
}

func TestCoerceNumeric_Strings(t *testing.T) {
	table := NewTable([]Row{
		rawRow("A", "12", "100"),
		rawRow("B", "", "not-a-number"),
		rawRow("C", "120.0", "1e3"),
	})

	coerced := CoerceNumeric(table)
	require.Equal(t, 3, coerced.RowCount())

	assert.Equal(t, int64(12), coerced.Rows[0][ColNewCases])
	assert.Equal(t, int64(100), coerced.Rows[0][ColCumulativeCases])

	// Empty and unparseable become missing, not zero.
	assert.Nil(t, coerced.Rows[1][ColNewCases])
	assert.Nil(t, coerced.Rows[1][ColCumulativeCases])

	// Whole-valued floats count as integers.
	assert.Equal(t, int64(120), coerced.Rows[2][ColNewCases])
	assert.Equal(t, int64(1000), coerced.Rows[2][ColCumulativeCases])
}

func TestCoerceNumeric_InvalidValues(t *testing.T) {
	table := NewTable([]Row{
		rawRow("A", "-5", "3.7"),
	})

	coerced := CoerceNumeric(table)

	// The counters are non-negative integers; everything else is
	// invalid and therefore missing.
	assert.Nil(t, coerced.Rows[0][ColNewCases])
	assert.Nil(t, coerced.Rows[0][ColCumulativeCases])
}

func TestCoerceNumeric_DoesNotMutateInput(t *testing.T) {
	table := NewTable([]Row{
		rawRow("A", "12", "100"),
	})

	_ = CoerceNumeric(table)

	assert.Equal(t, "12", table.Rows[0][ColNewCases])
	assert.Equal(t, "100", table.Rows[0][ColCumulativeCases])
}

func TestCoerceNumeric_Idempotent(t *testing.T) {
	table := NewTable([]Row{
		rawRow("A", "12", ""),
		rawRow("B", "0", "77"),
	})

	once := CoerceNumeric(table)
	twice := CoerceNumeric(once)

	require.Equal(t, once.RowCount(), twice.RowCount())
	for i := range once.Rows {
		assert.Equal(t, once.Rows[i], twice.Rows[i])
	}
}

func TestCoerceNumeric_LeavesOtherColumnsAlone(t *testing.T) {
	table := NewTable([]Row{
		rawRow("Spain", "1", "2"),
	})

	coerced := CoerceNumeric(table)

	assert.Equal(t, "Spain", coerced.Rows[0][ColCountry])
	assert.Equal(t, "EUR", coerced.Rows[0][ColWHORegion])
	assert.Equal(t, sampleDate, coerced.Rows[0][ColDateReported])
}
