// Package sampler draws reproducible random row subsets.
package sampler

import (
	"math"
	"math/rand"

	"github.com/kasuganosora/covidsample/pkg/dataset"
)

// Seed is the fixed PRNG seed. Sampling must be reproducible: the same
// table and percentage select the same rows, in the same order, on
// every run and on every platform.
const Seed = 42

// Sampling fraction bounds. The requested percentage is clamped into
// this range regardless of what the UI already enforces.
const (
	MinFraction = 0.01
	MaxFraction = 0.50
)

// Fraction converts a requested percentage to the clamped sampling
// fraction.
func Fraction(percent int) float64 {
	f := float64(percent) / 100
	if f < MinFraction {
		return MinFraction
	}
	if f > MaxFraction {
		return MaxFraction
	}
	return f
}

// Sample returns a new table holding round(fraction*rows) rows drawn
// without replacement, uniformly at random from a generator seeded with
// Seed. Output order is the draw order; row positions from the input do
// not survive. An empty input yields an empty table.
func Sample(t *dataset.Table, percent int) *dataset.Table {
	n := t.RowCount()
	if n == 0 {
		return dataset.NewTable(nil)
	}

	k := int(math.Round(Fraction(percent) * float64(n)))
	rng := rand.New(rand.NewSource(Seed))
	perm := rng.Perm(n)

	rows := make([]dataset.Row, 0, k)
	for _, idx := range perm[:k] {
		rows = append(rows, t.Rows[idx])
	}
	return dataset.NewTable(rows)
}
