package genetic

import (
	"fmt"
	"math/rand"
)

// GeneticAlgorithm runs one generational step with injected strategies.
// It only ever sees individuals through the Individual interface.
type GeneticAlgorithm[I Individual] struct {
	selection SelectionMethod
	crossover CrossoverMethod
	mutation  MutationMethod
	create    Factory[I]
}

// New creates an engine from its three strategies and an individual factory.
func New[I Individual](
	selection SelectionMethod,
	crossover CrossoverMethod,
	mutation MutationMethod,
	create Factory[I],
) *GeneticAlgorithm[I] {
	return &GeneticAlgorithm[I]{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
		create:    create,
	}
}

// Evolve produces a population of the same size plus statistics of the input.
//
// Each output slot consumes randomness in a fixed order: select parent A,
// select parent B, crossover, mutate. Parents may be the same individual.
func (ga *GeneticAlgorithm[I]) Evolve(rng *rand.Rand, population []I) ([]I, Statistics, error) {
	if len(population) == 0 {
		return nil, Statistics{}, ErrEmptyPopulation
	}

	fitness := make([]float64, len(population))
	for i, individual := range population {
		fitness[i] = individual.Fitness()
	}

	stats, err := NewStatistics(fitness)
	if err != nil {
		return nil, Statistics{}, err
	}

	next := make([]I, len(population))
	for slot := range next {
		a, err := ga.selection.Select(rng, fitness)
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("selecting parent a: %w", err)
		}
		b, err := ga.selection.Select(rng, fitness)
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("selecting parent b: %w", err)
		}

		child, err := ga.crossover.Crossover(rng, population[a].Chromosome(), population[b].Chromosome())
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("crossover for slot %d: %w", slot, err)
		}

		ga.mutation.Mutate(rng, child)
		next[slot] = ga.create(child)
	}

	return next, stats, nil
}
