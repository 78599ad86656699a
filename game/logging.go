package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

// LogSummary logs a human-readable end-of-run summary.
func (g *Game) LogSummary(started time.Time) {
	ticks := g.sim.Ticks()
	elapsed := time.Since(started)

	var rate float64
	if elapsed > 0 {
		rate = float64(ticks) / elapsed.Seconds()
	}

	attrs := []any{
		"generations", humanize.Comma(int64(g.sim.Generation())),
		"ticks", humanize.Comma(ticks),
		"ticks_per_sec", humanize.CommafWithDigits(rate, 0),
		"started", humanize.RelTime(started, time.Now(), "ago", "from now"),
	}
	if best, ok := g.hallOfFame.Best(); ok {
		attrs = append(attrs, "best", slog.GroupValue(
			slog.Int("generation", best.Generation),
			slog.Int("slot", best.Slot),
			slog.Float64("fitness", best.Fitness),
		))
	}
	if g.lastStats != nil {
		attrs = append(attrs, "last_avg_fitness", fmt.Sprintf("%.2f", g.lastStats.AvgFitness))
	}
	if dir := g.outputManager.Dir(); dir != "" {
		attrs = append(attrs, "output_dir", dir)
	}

	slog.Info("run finished", attrs...)
}

// hudLines returns the status text drawn in the viewer panel.
func (g *Game) hudLines() []string {
	lines := []string{
		fmt.Sprintf("Generation: %s", humanize.Comma(int64(g.sim.Generation()))),
		fmt.Sprintf("Age: %s / %s", humanize.Comma(int64(g.sim.Age())), humanize.Comma(int64(g.cfg.Evolution.GenerationLength))),
		fmt.Sprintf("Ticks: %s", humanize.Comma(g.sim.Ticks())),
		fmt.Sprintf("Speed: %dx", g.stepsPerUpdate),
		fmt.Sprintf("Seed: %d", g.rngSeed),
	}
	if g.lastStats != nil {
		lines = append(lines, fmt.Sprintf("Fitness min/avg/max: %.0f / %.2f / %.0f",
			g.lastStats.MinFitness, g.lastStats.AvgFitness, g.lastStats.MaxFitness))
	}

	perf := g.perfCollector.Stats()
	lines = append(lines, fmt.Sprintf("TPS: %s  FPS: %.0f", humanize.CommafWithDigits(perf.TicksPerSecond, 0), perf.FPS))
	return lines
}
