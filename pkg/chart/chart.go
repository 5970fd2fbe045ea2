// Package chart renders the two preview charts as PNG images.
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/kasuganosora/covidsample/pkg/dataset"
	"github.com/kasuganosora/covidsample/pkg/stats"
)

// TopCountriesBar renders the ranked per-country aggregate as a bar
// chart (value = cumulative cases, one bar per country).
func TopCountriesBar(totals []stats.CountryTotal) ([]byte, error) {
	if len(totals) == 0 {
		return nil, fmt.Errorf("no countries to plot")
	}

	bars := make([]chart.Value, 0, len(totals))
	maxValue := 0.0
	for _, total := range totals {
		v := float64(total.CumulativeCases)
		if v > maxValue {
			maxValue = v
		}
		bars = append(bars, chart.Value{Label: total.Country, Value: v})
	}
	// An all-zero sample would collapse the y-range and fail to render.
	if maxValue < 1 {
		maxValue = 1
	}

	ch := chart.BarChart{
		Title:      "Top countries by cumulative cases (sample)",
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 60}},
		Width:      900,
		Height:     450,
		BarWidth:   48,
		YAxis: chart.YAxis{
			Name:  "Cumulative cases",
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.05},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("bar chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// CountryTrend renders the dual-line time series for one country:
// cumulative cases and new cases over Date_reported. Points with a
// missing value or date are skipped per line.
func CountryTrend(rows []dataset.Row, country string) ([]byte, error) {
	cumulative := timeSeries("Cumulative cases", rows, dataset.ColCumulativeCases)
	newCases := timeSeries("New cases", rows, dataset.ColNewCases)

	series := []chart.Series{}
	maxValue := 0.0
	for _, s := range []chart.TimeSeries{cumulative, newCases} {
		if len(s.XValues) == 0 {
			continue
		}
		for _, y := range s.YValues {
			if y > maxValue {
				maxValue = y
			}
		}
		series = append(series, s)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no datapoints to plot for %s", country)
	}
	if maxValue < 1 {
		maxValue = 1
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("%s — cases over time (sample)", country),
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 40}},
		Width:      1000,
		Height:     420,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  "Cases",
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.05},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("trend chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func timeSeries(name string, rows []dataset.Row, column string) chart.TimeSeries {
	var xs []time.Time
	var ys []float64
	for _, row := range rows {
		date, ok := row.DateOf(dataset.ColDateReported)
		if !ok {
			continue
		}
		value, ok := row[column].(int64)
		if !ok {
			continue
		}
		xs = append(xs, date)
		ys = append(ys, float64(value))
	}
	// A single point collapses the x-range; pad it with a one-day
	// duplicate so the renderer accepts the series.
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}
	return chart.TimeSeries{Name: name, XValues: xs, YValues: ys}
}
