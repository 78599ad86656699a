package genetic

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes the fitness of a population snapshot.
type Statistics struct {
	MinFitness float64 `csv:"min_fitness"`
	MaxFitness float64 `csv:"max_fitness"`
	AvgFitness float64 `csv:"avg_fitness"`
}

// NewStatistics computes min, max and mean over fitness values.
func NewStatistics(fitness []float64) (Statistics, error) {
	if len(fitness) == 0 {
		return Statistics{}, ErrEmptyPopulation
	}
	return Statistics{
		MinFitness: floats.Min(fitness),
		MaxFitness: floats.Max(fitness),
		AvgFitness: stat.Mean(fitness, nil),
	}, nil
}

// LogValue implements slog.LogValuer for structured logging.
func (s Statistics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("min_fitness", s.MinFitness),
		slog.Float64("max_fitness", s.MaxFitness),
		slog.Float64("avg_fitness", s.AvgFitness),
	)
}
