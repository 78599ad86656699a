package main

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/evosim/config"
	"github.com/pthm-cable/evosim/simulation"
	"github.com/pthm-cable/evosim/telemetry"
)

// FitnessEvaluator trains headless simulations and scores parameter vectors.
type FitnessEvaluator struct {
	params      *ParamVector
	generations int
	window      int // trailing generations averaged into the score
	seeds       []int64
	baseConfig  *config.Config

	// Best run tracking
	mu             sync.Mutex
	bestFitness    float64
	bestHallOfFame *telemetry.HallOfFame
	lastSpread     float64 // std-dev across seeds from the most recent Evaluate
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, generations, window int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		generations: generations,
		window:      max(1, min(window, generations)),
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// BestHallOfFame returns the hall of fame from the best evaluation.
func (fe *FitnessEvaluator) BestHallOfFame() *telemetry.HallOfFame {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestHallOfFame
}

// LastSpread returns the across-seed standard deviation of the most recent
// evaluation.
func (fe *FitnessEvaluator) LastSpread() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSpread
}

// runResult holds the results from a single simulation run.
type runResult struct {
	score      float64 // mean average fitness over the trailing window
	hallOfFame *telemetry.HallOfFame
	err        error
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Fitness is the negated mean food eaten per agent over the last window
// generations, averaged across seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	scores := make([]float64, 0, len(results))
	var best *runResult
	for i := range results {
		r := &results[i]
		if r.err != nil {
			// Parameters the simulation rejects are the worst possible.
			return math.Inf(1)
		}
		scores = append(scores, r.score)
		if best == nil || r.score > best.score {
			best = r
		}
	}

	mean, std := stat.MeanStdDev(scores, nil)
	if len(scores) < 2 {
		std = 0
	}
	fitness := -mean

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
		fe.bestHallOfFame = best.hallOfFame
	}
	fe.lastSpread = std
	fe.mu.Unlock()

	return fitness
}

// runSimulation trains one seeded simulation for the configured number of
// generations.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	rng := rand.New(rand.NewSource(seed))
	sim, err := simulation.New(cfg, rng)
	if err != nil {
		return runResult{err: err}
	}

	hof := telemetry.NewHallOfFame(cfg.Telemetry.HallOfFame)
	var sum float64
	for gen := 1; gen <= fe.generations; gen++ {
		stats, err := sim.Train(rng)
		if err != nil {
			return runResult{err: fmt.Errorf("seed %d generation %d: %w", seed, gen, err)}
		}
		hof.ConsiderGeneration(gen, sim.LastGeneration())
		if gen > fe.generations-fe.window {
			sum += stats.AvgFitness
		}
	}

	return runResult{
		score:      sum / float64(fe.window),
		hallOfFame: hof,
	}
}

// copyConfig returns an independent copy of the base config. Config holds
// only value fields, so a shallow copy is enough.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
