package simulation

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/evosim/genetic"
	"github.com/pthm-cable/evosim/neural"
)

// Brain wraps the network that turns vision into movement.
type Brain struct {
	network *neural.Network
}

// BrainTopology returns [cells, 2*cells, 2]: vision in, one hidden layer,
// speed and rotation deltas out.
func BrainTopology(eye Eye) neural.Topology {
	return neural.Topology{eye.Cells(), 2 * eye.Cells(), 2}
}

// RandomBrain creates a brain with random weights sized for eye.
func RandomBrain(rng *rand.Rand, eye Eye) (*Brain, error) {
	nn, err := neural.Random(rng, BrainTopology(eye))
	if err != nil {
		return nil, fmt.Errorf("building random brain: %w", err)
	}
	return &Brain{network: nn}, nil
}

// BrainFromChromosome decodes a genome through the brain topology for eye.
// The chromosome length must match the topology exactly.
func BrainFromChromosome(chromosome genetic.Chromosome, eye Eye) (*Brain, error) {
	nn, err := neural.FromWeights(BrainTopology(eye), chromosome)
	if err != nil {
		return nil, fmt.Errorf("decoding brain: %w", err)
	}
	return &Brain{network: nn}, nil
}

// Chromosome flattens the network weights into a genome.
func (b *Brain) Chromosome() genetic.Chromosome {
	return genetic.Chromosome(b.network.Weights())
}

// Network exposes the underlying network for inspection.
func (b *Brain) Network() *neural.Network {
	return b.network
}

// Decide maps a vision vector to raw (speed, rotation) deltas.
func (b *Brain) Decide(vision []float32) (speed, rotation float32, err error) {
	out, err := b.network.Propagate(vision)
	if err != nil {
		return 0, 0, err
	}
	return out[0], out[1], nil
}
