package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationRecord summarizes one completed generation.
type GenerationRecord struct {
	RunID      string  `csv:"run_id"`
	Generation int     `csv:"generation"`
	Ticks      int64   `csv:"ticks"`
	ElapsedSec float64 `csv:"elapsed_sec"`

	// Fitness (food eaten) across the scored population
	MinFitness    float64 `csv:"min_fitness"`
	MaxFitness    float64 `csv:"max_fitness"`
	AvgFitness    float64 `csv:"avg_fitness"`
	StdDevFitness float64 `csv:"std_fitness"`
	P10Fitness    float64 `csv:"p10_fitness"`
	P50Fitness    float64 `csv:"p50_fitness"`
	P90Fitness    float64 `csv:"p90_fitness"`

	// Agents that ate at least once
	Feeders int `csv:"feeders"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeFitnessStats returns the standard deviation and the 10th, 50th and
// 90th percentiles of values. The input is not modified.
func ComputeFitnessStats(values []float64) (std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) > 1 {
		_, std = stat.PopMeanStdDev(sorted, nil)
	}
	return std, Percentile(sorted, 0.10), Percentile(sorted, 0.50), Percentile(sorted, 0.90)
}

// LogValue implements slog.LogValuer for structured logging.
func (r GenerationRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", r.Generation),
		slog.Int64("ticks", r.Ticks),
		slog.Float64("min", r.MinFitness),
		slog.Float64("max", r.MaxFitness),
		slog.Float64("avg", r.AvgFitness),
		slog.Float64("std", r.StdDevFitness),
		slog.Float64("p50", r.P50Fitness),
		slog.Int("feeders", r.Feeders),
	)
}
