package neural

import "math/rand"

// Layer is a set of neurons sharing the same input width.
type Layer struct {
	Neurons []Neuron
}

func randomLayer(rng *rand.Rand, inputs, outputs int) Layer {
	neurons := make([]Neuron, outputs)
	for i := range neurons {
		neurons[i] = randomNeuron(rng, inputs)
	}
	return Layer{Neurons: neurons}
}

// propagate writes one activation per neuron into out and returns it.
func (l *Layer) propagate(inputs, out []float32) []float32 {
	out = out[:0]
	for i := range l.Neurons {
		out = append(out, l.Neurons[i].propagate(inputs))
	}
	return out
}
