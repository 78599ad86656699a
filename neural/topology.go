package neural

import "fmt"

// Topology lists layer widths from input to output, e.g. [9, 18, 2].
type Topology []int

// Validate checks that there is an input width and at least one output width,
// and that every width is positive.
func (t Topology) Validate() error {
	if len(t) < 2 {
		return fmt.Errorf("%w: need at least 2 layer widths, got %d", ErrInvalidTopology, len(t))
	}
	for i, w := range t {
		if w < 1 {
			return fmt.Errorf("%w: layer %d has width %d", ErrInvalidTopology, i, w)
		}
	}
	return nil
}

// Inputs returns the input width.
func (t Topology) Inputs() int { return t[0] }

// Outputs returns the output width.
func (t Topology) Outputs() int { return t[len(t)-1] }

// WeightCount returns the length of the flat weight sequence for this topology:
// one bias plus one weight per input, for every neuron past the input layer.
func (t Topology) WeightCount() int {
	var n int
	for i := 1; i < len(t); i++ {
		n += t[i] * (t[i-1] + 1)
	}
	return n
}
