// Package neural provides feedforward neural network brains for agents.
//
// A Network flattens to, and rebuilds from, a single []float32 in canonical
// order: layer by layer, neuron by neuron, and for each neuron its bias
// followed by its weights. Random, Weights and FromWeights all share that
// order, so FromWeights(t, n.Weights()) reproduces n exactly.
package neural

import (
	"fmt"
	"math/rand"
)

// Network is a fully connected feedforward network with ReLU activations.
type Network struct {
	topology Topology
	layers   []Layer
}

// Random builds a network for topology with every bias and weight drawn
// uniformly from [-1, 1).
func Random(rng *rand.Rand, topology Topology) (*Network, error) {
	if err := topology.Validate(); err != nil {
		return nil, err
	}

	layers := make([]Layer, len(topology)-1)
	for i := range layers {
		layers[i] = randomLayer(rng, topology[i], topology[i+1])
	}

	return &Network{topology: cloneTopology(topology), layers: layers}, nil
}

// FromWeights rebuilds a network by consuming weights in canonical order.
func FromWeights(topology Topology, weights []float32) (*Network, error) {
	if err := topology.Validate(); err != nil {
		return nil, err
	}

	next := 0
	take := func() (float32, bool) {
		if next >= len(weights) {
			return 0, false
		}
		w := weights[next]
		next++
		return w, true
	}

	layers := make([]Layer, len(topology)-1)
	for li := range layers {
		inputs, outputs := topology[li], topology[li+1]
		neurons := make([]Neuron, outputs)

		for ni := range neurons {
			bias, ok := take()
			if !ok {
				return nil, insufficient(topology, len(weights), li, ni)
			}

			ws := make([]float32, inputs)
			for wi := range ws {
				w, ok := take()
				if !ok {
					return nil, insufficient(topology, len(weights), li, ni)
				}
				ws[wi] = w
			}
			neurons[ni] = Neuron{Bias: bias, Weights: ws}
		}
		layers[li] = Layer{Neurons: neurons}
	}

	if next != len(weights) {
		return nil, fmt.Errorf("%w: topology %v uses %d of %d weights",
			ErrExcessWeights, []int(topology), next, len(weights))
	}

	return &Network{topology: cloneTopology(topology), layers: layers}, nil
}

func insufficient(topology Topology, got, layer, neuron int) error {
	return fmt.Errorf("%w: topology %v needs %d weights, got %d (ran out at layer %d neuron %d)",
		ErrInsufficientWeights, []int(topology), topology.WeightCount(), got, layer, neuron)
}

// Weights flattens the network in canonical order.
func (n *Network) Weights() []float32 {
	out := make([]float32, 0, n.topology.WeightCount())
	for li := range n.layers {
		for ni := range n.layers[li].Neurons {
			neuron := &n.layers[li].Neurons[ni]
			out = append(out, neuron.Bias)
			out = append(out, neuron.Weights...)
		}
	}
	return out
}

// Propagate feeds inputs through every layer and returns the last layer's
// activations.
func (n *Network) Propagate(inputs []float32) ([]float32, error) {
	if len(inputs) != n.topology.Inputs() {
		return nil, fmt.Errorf("%w: expected %d inputs, got %d", ErrInputSize, n.topology.Inputs(), len(inputs))
	}

	current := inputs
	for i := range n.layers {
		current = n.layers[i].propagate(current, make([]float32, 0, len(n.layers[i].Neurons)))
	}
	return current, nil
}

// Trace propagates inputs like Propagate but keeps every layer's
// activations. The result has one slice per topology entry, starting with a
// copy of the inputs.
func (n *Network) Trace(inputs []float32) ([][]float32, error) {
	if len(inputs) != n.topology.Inputs() {
		return nil, fmt.Errorf("%w: expected %d inputs, got %d", ErrInputSize, n.topology.Inputs(), len(inputs))
	}

	trace := make([][]float32, 0, len(n.topology))
	trace = append(trace, append([]float32(nil), inputs...))
	for i := range n.layers {
		out := n.layers[i].propagate(trace[i], make([]float32, 0, len(n.layers[i].Neurons)))
		trace = append(trace, out)
	}
	return trace, nil
}

// Topology returns a copy of the layer widths.
func (n *Network) Topology() Topology {
	return cloneTopology(n.topology)
}

// Layers exposes the layers for inspection. Callers must not modify them.
func (n *Network) Layers() []Layer {
	return n.layers
}

func cloneTopology(t Topology) Topology {
	out := make(Topology, len(t))
	copy(out, t)
	return out
}
