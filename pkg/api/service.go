// Package api is the orchestration facade: one load operation and one
// export operation, wired for a UI collaborator.
package api

import (
	"errors"

	"github.com/kasuganosora/covidsample/pkg/dataset"
	"github.com/kasuganosora/covidsample/pkg/export"
	"github.com/kasuganosora/covidsample/pkg/reader"
	"github.com/kasuganosora/covidsample/pkg/sampler"
	"github.com/kasuganosora/covidsample/pkg/stats"
)

// PreviewRows is how many rows the preview shows.
const PreviewRows = 10

// Source is an uploaded file. A nil *Source means "no upload": the
// builtin fallback sample is used instead.
type Source struct {
	Name string
	Data []byte
}

// Service wires reader, sampler, coercion and exporter into the two
// user-triggered operations. It holds no table state itself; the only
// state carried across an interaction is the Table the caller keeps.
type Service struct {
	logger Logger
	cache  *LoadCache
}

// NewService creates a Service. A nil logger disables logging.
func NewService(logger Logger, cacheConfig CacheConfig) *Service {
	if logger == nil {
		logger = NewNoOpLogger()
	}
	return &Service{
		logger: logger,
		cache:  NewLoadCache(cacheConfig),
	}
}

// Load produces the sampled, coerced table for one interaction.
//
// With no source the builtin fallback is returned whole, bypassing the
// sampler regardless of percent. Otherwise the source is parsed, then
// sampled at the clamped fraction, then numerically coerced, in that
// order, so coercion failures never influence which rows are selected.
// Identical inputs always yield an identical table (fixed sampling
// seed); any failure surfaces as *ErrLoadFailed and no table.
func (s *Service) Load(source *Source, percent int) (*dataset.Table, error) {
	key := CacheKey(source, percent)
	if table, ok := s.cache.Get(key); ok {
		s.logger.Debug("load cache hit: %s", key)
		return table, nil
	}

	var table *dataset.Table
	if source == nil {
		s.logger.Info("no upload, using builtin sample")
		table = dataset.CoerceNumeric(dataset.BuiltinSample())
	} else {
		full, err := reader.Read(source.Name, source.Data)
		if err != nil {
			s.logger.Warn("load failed for %q: %v", source.Name, err)
			return nil, NewErrLoadFailed(err)
		}
		table = dataset.CoerceNumeric(sampler.Sample(full, percent))
		s.logger.Info("loaded %q: %d of %d rows sampled at %d%%",
			source.Name, table.RowCount(), full.RowCount(), percent)
	}

	s.cache.Set(key, table)
	return table, nil
}

// Export builds the three download payloads for a loaded table. Pure
// function of its input.
func (s *Service) Export(table *dataset.Table, percent int) (*export.Bundle, error) {
	return export.Build(table, percent)
}

// Preview summarizes a loaded table for display.
type Preview struct {
	Head        []dataset.Row
	RowCount    int
	ColumnCount int
	// Top is the ranked aggregate; TopAvailable is false when the
	// cumulative cases column is absent and a textual fallback should
	// be rendered instead of a chart.
	Top          []stats.CountryTotal
	TopAvailable bool
	Countries    []string
}

// Preview assembles the preview for a loaded table.
func (s *Service) Preview(table *dataset.Table) *Preview {
	preview := &Preview{
		Head:        table.Head(PreviewRows),
		RowCount:    table.RowCount(),
		ColumnCount: table.ColumnCount(),
		Countries:   table.Countries(),
	}

	top, err := stats.TopCountries(table, stats.TopLimit)
	if err != nil {
		var unavailable *dataset.ErrColumnUnavailable
		if !errors.As(err, &unavailable) {
			s.logger.Error("aggregate failed: %v", err)
		}
		return preview
	}
	preview.Top = top
	preview.TopAvailable = true
	return preview
}
