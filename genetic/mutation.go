package genetic

import (
	"fmt"
	"math/rand"
)

// MutationMethod perturbs a chromosome in place.
type MutationMethod interface {
	Mutate(rng *rand.Rand, child Chromosome)
}

// GaussianMutation adds uniform(-1, 1) * coefficient to each gene with the
// configured probability.
type GaussianMutation struct {
	chance      float32
	coefficient float32
}

// NewGaussianMutation validates chance in [0, 1] and coefficient >= 0.
func NewGaussianMutation(chance, coefficient float32) (*GaussianMutation, error) {
	if !(chance >= 0 && chance <= 1) {
		return nil, fmt.Errorf("%w: mutation chance %v not in [0, 1]", ErrInvalidParameters, chance)
	}
	if !(coefficient >= 0) {
		return nil, fmt.Errorf("%w: mutation coefficient %v is negative", ErrInvalidParameters, coefficient)
	}
	return &GaussianMutation{chance: chance, coefficient: coefficient}, nil
}

// Chance returns the per-gene mutation probability.
func (m *GaussianMutation) Chance() float32 { return m.chance }

// Coefficient returns the perturbation scale.
func (m *GaussianMutation) Coefficient() float32 { return m.coefficient }

// Mutate draws one chance value for every gene, and a second value for each
// gene that mutates.
func (m *GaussianMutation) Mutate(rng *rand.Rand, child Chromosome) {
	for i := range child {
		if rng.Float32() < m.chance {
			child[i] += (rng.Float32()*2 - 1) * m.coefficient
		}
	}
}
