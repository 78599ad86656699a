package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/config"
	"github.com/pthm-cable/evosim/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output per-generation stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxGenerations := flag.Int("max-generations", 0, "Stop after N generations (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster runs)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *headless {
		if err := runHeadless(cfg, opts, *maxGenerations); err != nil {
			slog.Error("simulation failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runViewer(cfg, opts, *maxGenerations); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless trains without a window until maxGenerations (0 = forever).
func runHeadless(cfg *config.Config, opts game.Options, maxGenerations int) error {
	g, err := game.NewGameWithOptions(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	started := time.Now()
	defer g.LogSummary(started)

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_generations", maxGenerations,
		"steps_per_update", opts.StepsPerUpdate,
	)

	for maxGenerations == 0 || g.Generation() < maxGenerations {
		if err := g.UpdateHeadless(); err != nil {
			return err
		}
	}
	slog.Info("max generations reached", "generation", g.Generation())
	return nil
}

// runViewer opens a window and runs until it is closed or maxGenerations.
func runViewer(cfg *config.Config, opts game.Options, maxGenerations int) error {
	rl.InitWindow(game.ScreenWidth, game.ScreenHeight, "evosim")
	defer rl.CloseWindow()

	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	g, err := game.NewGameWithOptions(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	started := time.Now()
	defer g.LogSummary(started)

	for !rl.WindowShouldClose() {
		if err := g.Update(); err != nil {
			return err
		}
		if err := g.Draw(); err != nil {
			return err
		}

		if maxGenerations > 0 && g.Generation() >= maxGenerations {
			break
		}
	}
	return nil
}
