package neural

import "math/rand"

// Neuron holds one bias and one weight per input.
type Neuron struct {
	Bias    float32
	Weights []float32
}

// randomNeuron draws the bias first, then each weight, uniformly from [-1, 1).
func randomNeuron(rng *rand.Rand, inputs int) Neuron {
	bias := randomWeight(rng)
	weights := make([]float32, inputs)
	for i := range weights {
		weights[i] = randomWeight(rng)
	}
	return Neuron{Bias: bias, Weights: weights}
}

func randomWeight(rng *rand.Rand) float32 {
	return rng.Float32()*2 - 1
}

// propagate returns relu(sum(input_i * weight_i) + bias).
// Callers guarantee len(inputs) == len(n.Weights).
func (n *Neuron) propagate(inputs []float32) float32 {
	var sum float32
	for i, w := range n.Weights {
		sum += inputs[i] * w
	}
	return relu(sum + n.Bias)
}

func relu(x float32) float32 {
	if x < 0 {
		return 0
	}
	return x
}
