package telemetry

import (
	"time"

	"github.com/google/uuid"

	"github.com/pthm-cable/evosim/genetic"
	"github.com/pthm-cable/evosim/simulation"
)

// Collector turns generation boundaries into GenerationRecords.
type Collector struct {
	runID string
	now   func() time.Time

	// Current generation tracking
	generationStart time.Time
}

// NewCollector creates a collector with a fresh run id.
func NewCollector() *Collector {
	return newCollector(uuid.NewString(), time.Now)
}

func newCollector(runID string, now func() time.Time) *Collector {
	return &Collector{
		runID:           runID,
		now:             now,
		generationStart: now(),
	}
}

// RunID identifies every record produced by this collector.
func (c *Collector) RunID() string {
	return c.runID
}

// Flush produces a record for the generation that just ended and starts
// timing the next one. The caller must provide:
// - generation: the index of the generation that ended
// - ticks: total simulation ticks so far
// - stats: the statistics returned by the simulation step
// - scored: the individuals that were evaluated
func (c *Collector) Flush(
	generation int,
	ticks int64,
	stats genetic.Statistics,
	scored []*simulation.AgentIndividual,
) GenerationRecord {
	fitness := make([]float64, len(scored))
	feeders := 0
	for i, individual := range scored {
		fitness[i] = individual.Fitness()
		if fitness[i] > 0 {
			feeders++
		}
	}
	std, p10, p50, p90 := ComputeFitnessStats(fitness)

	now := c.now()
	record := GenerationRecord{
		RunID:      c.runID,
		Generation: generation,
		Ticks:      ticks,
		ElapsedSec: now.Sub(c.generationStart).Seconds(),

		MinFitness:    stats.MinFitness,
		MaxFitness:    stats.MaxFitness,
		AvgFitness:    stats.AvgFitness,
		StdDevFitness: std,
		P10Fitness:    p10,
		P50Fitness:    p50,
		P90Fitness:    p90,

		Feeders: feeders,
	}

	// Reset for next generation
	c.generationStart = now

	return record
}
