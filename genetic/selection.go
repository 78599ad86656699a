package genetic

import (
	"fmt"
	"math"
	"math/rand"
)

// SelectionMethod picks one member of a population given every member's fitness.
// It returns the index of the chosen member.
type SelectionMethod interface {
	Select(rng *rand.Rand, fitness []float64) (int, error)
}

// RouletteWheelSelection is fitness-proportionate selection.
// A population whose total fitness is zero is selected from uniformly.
type RouletteWheelSelection struct{}

// Select makes one call on rng: Float64 normally, Intn when every fitness is
// zero.
func (RouletteWheelSelection) Select(rng *rand.Rand, fitness []float64) (int, error) {
	if len(fitness) == 0 {
		return 0, ErrEmptyPopulation
	}

	var total float64
	for i, f := range fitness {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: individual %d has fitness %v", ErrInvalidFitness, i, f)
		}
		total += f
	}
	if math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w: total fitness overflows", ErrInvalidFitness)
	}

	if total == 0 {
		return rng.Intn(len(fitness)), nil
	}

	target := rng.Float64() * total
	var cumulative float64
	for i, f := range fitness {
		cumulative += f
		if target < cumulative {
			return i, nil
		}
	}

	// Rounding can leave target == total; fall back to the last non-zero slot.
	for i := len(fitness) - 1; i >= 0; i-- {
		if fitness[i] > 0 {
			return i, nil
		}
	}
	return len(fitness) - 1, nil
}
