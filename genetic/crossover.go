package genetic

import (
	"fmt"
	"math/rand"
)

// CrossoverMethod recombines two parent chromosomes into a child.
type CrossoverMethod interface {
	Crossover(rng *rand.Rand, parentA, parentB Chromosome) (Chromosome, error)
}

// UniformCrossover takes each gene from either parent with equal probability,
// flipping one coin per gene.
type UniformCrossover struct{}

// Crossover returns a new chromosome; the parents are not modified.
func (UniformCrossover) Crossover(rng *rand.Rand, parentA, parentB Chromosome) (Chromosome, error) {
	if len(parentA) != len(parentB) {
		return nil, fmt.Errorf("%w: %d vs %d genes", ErrChromosomeLengthMismatch, len(parentA), len(parentB))
	}

	child := make(Chromosome, len(parentA))
	for i := range parentA {
		if rng.Float64() < 0.5 {
			child[i] = parentA[i]
		} else {
			child[i] = parentB[i]
		}
	}
	return child, nil
}
