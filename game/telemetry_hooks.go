package game

import (
	"log/slog"

	"github.com/pthm-cable/evosim/genetic"
)

// onGeneration records a completed generation: CSV row, hall of fame
// candidates and, every logEvery generations, a log line.
func (g *Game) onGeneration(stats genetic.Statistics) {
	generation := g.sim.Generation()
	scored := g.sim.LastGeneration()

	record := g.collector.Flush(generation, g.sim.Ticks(), stats, scored)
	admitted := g.hallOfFame.ConsiderGeneration(generation, scored)
	perfStats := g.perfCollector.Stats()

	g.lastStats = &stats
	g.history = append(g.history, stats.AvgFitness)

	if g.logStats && generation%g.logEvery == 0 {
		slog.Info("generation",
			"record", record,
			"hall_of_fame_admitted", admitted,
			"hall_of_fame_top", g.hallOfFame.TopFitness(),
			"perf", perfStats,
		)
	}

	if err := g.outputManager.WriteGeneration(record); err != nil {
		slog.Error("failed to write generation", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, generation); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
