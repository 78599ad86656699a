// Package game drives a simulation for the command line and the viewer:
// stepping, generation telemetry, input and drawing.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/evosim/camera"
	"github.com/pthm-cable/evosim/config"
	"github.com/pthm-cable/evosim/genetic"
	"github.com/pthm-cable/evosim/simulation"
	"github.com/pthm-cable/evosim/telemetry"
)

// Screen dimensions
const (
	ScreenWidth  = 1100
	ScreenHeight = 800
	PanelWidth   = 300
)

// MaxStepsPerUpdate bounds the viewer speed slider.
const MaxStepsPerUpdate = 200

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the simulation plus everything that observes it.
type Game struct {
	cfg *config.Config
	sim *simulation.Simulation
	rng *rand.Rand

	rngSeed int64

	// Telemetry
	collector     *telemetry.Collector
	hallOfFame    *telemetry.HallOfFame
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	logEvery      int

	// Per-generation average fitness, for the HUD chart
	history   []float64
	lastStats *genetic.Statistics

	// Viewer state
	camera         *camera.Camera
	paused         bool
	stepsPerUpdate int
	selected       int // agent index, -1 for none
	showFOV        bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game from cfg. In headless mode no window
// state is touched.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	rng := rand.New(rand.NewSource(opts.Seed))

	sim, err := simulation.New(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		sim:            sim,
		rng:            rng,
		rngSeed:        opts.Seed,
		collector:      telemetry.NewCollector(),
		hallOfFame:     telemetry.NewHallOfFame(cfg.Telemetry.HallOfFame),
		perfCollector:  telemetry.NewPerfCollector(120),
		outputManager:  om,
		logStats:       opts.LogStats,
		logEvery:       cfg.Telemetry.LogEvery,
		stepsPerUpdate: steps,
		selected:       -1,
		showFOV:        true,
		screenWidth:    ScreenWidth,
		screenHeight:   ScreenHeight,
	}
	if !opts.Headless {
		g.camera = camera.New(ScreenWidth-PanelWidth, ScreenHeight)
	}

	slog.Info("simulation created",
		"run_id", g.collector.RunID(),
		"seed", opts.Seed,
		"agents", cfg.World.Agents,
		"foods", cfg.World.Foods,
		"genome_len", simulation.BrainTopology(simulation.NewEye(cfg.Eye)).WeightCount(),
	)

	return g, nil
}

// step advances the simulation one tick and handles a generation boundary.
func (g *Game) step() error {
	return g.timedTick(func() (*genetic.Statistics, error) {
		return g.sim.Step(g.rng)
	})
}

// timedTick runs advance as one timed tick. The tick is closed even when
// advance fails.
func (g *Game) timedTick(advance func() (*genetic.Statistics, error)) error {
	g.perfCollector.StartTick()
	defer g.perfCollector.EndTick()
	g.perfCollector.StartPhase(telemetry.PhaseStep)

	stats, err := advance()
	if err != nil {
		return err
	}
	if stats != nil {
		g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
		g.onGeneration(*stats)
	}
	return nil
}

// UpdateHeadless runs StepsPerUpdate ticks.
func (g *Game) UpdateHeadless() error {
	for i := 0; i < g.stepsPerUpdate; i++ {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// Train steps until the current generation ends.
func (g *Game) Train() error {
	generation := g.sim.Generation()
	for g.sim.Generation() == generation {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// Generation returns how many generations have completed.
func (g *Game) Generation() int {
	return g.sim.Generation()
}

// Tick returns the total number of simulation ticks.
func (g *Game) Tick() int64 {
	return g.sim.Ticks()
}

// Simulation exposes the driven simulation for read-only inspection.
func (g *Game) Simulation() *simulation.Simulation {
	return g.sim
}

// HallOfFame returns the best genomes seen so far.
func (g *Game) HallOfFame() *telemetry.HallOfFame {
	return g.hallOfFame
}

// Unload flushes and closes run output.
func (g *Game) Unload() {
	if err := g.outputManager.WriteHallOfFame(g.hallOfFame); err != nil {
		slog.Error("failed to write hall of fame", "error", err)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
