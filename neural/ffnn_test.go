package neural

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRandomShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	topology := Topology{4, 3, 2}

	nn, err := Random(rng, topology)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	layers := nn.Layers()
	if len(layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(layers))
	}
	for li, layer := range layers {
		if len(layer.Neurons) != topology[li+1] {
			t.Errorf("layer %d has %d neurons, want %d", li, len(layer.Neurons), topology[li+1])
		}
		for ni, neuron := range layer.Neurons {
			if len(neuron.Weights) != topology[li] {
				t.Errorf("layer %d neuron %d has %d weights, want %d", li, ni, len(neuron.Weights), topology[li])
			}
		}
	}

	for i, w := range nn.Weights() {
		if w < -1 || w > 1 {
			t.Errorf("weight %d = %v, outside [-1, 1]", i, w)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, err := Random(rand.New(rand.NewSource(7)), Topology{3, 6, 2})
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	b, err := Random(rand.New(rand.NewSource(7)), Topology{3, 6, 2})
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	wa, wb := a.Weights(), b.Weights()
	for i := range wa {
		if wa[i] != wb[i] {
			t.Fatalf("weight %d differs: %v vs %v", i, wa[i], wb[i])
		}
	}
}

func TestRandomInvalidTopology(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		topology Topology
	}{
		{"nil", nil},
		{"single layer", Topology{3}},
		{"zero width", Topology{3, 0, 2}},
		{"negative width", Topology{-1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Random(rng, tt.topology); !errors.Is(err, ErrInvalidTopology) {
				t.Errorf("err = %v, want ErrInvalidTopology", err)
			}
		})
	}
}

func TestPropagate(t *testing.T) {
	// Two inputs, one hidden layer of two neurons, one output.
	weights := []float32{
		0.5, -0.3, 0.8, // hidden 0: bias, w0, w1
		-1.0, 0.2, 0.1, // hidden 1
		0.1, 2.0, 3.0, // output: bias, w0, w1
	}
	nn, err := FromWeights(Topology{2, 2, 1}, weights)
	if err != nil {
		t.Fatalf("FromWeights: %v", err)
	}

	out, err := nn.Propagate([]float32{0.5, 1.0})
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}

	h0 := relu(-0.3*0.5 + 0.8*1.0 + 0.5)
	h1 := relu(0.2*0.5 + 0.1*1.0 - 1.0) // negative, clipped to zero
	want := relu(2.0*h0 + 3.0*h1 + 0.1)

	if len(out) != 1 {
		t.Fatalf("got %d outputs, want 1", len(out))
	}
	if diff := out[0] - want; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("output = %v, want %v", out[0], want)
	}
}

func TestPropagateReLUClipsNegative(t *testing.T) {
	nn, err := FromWeights(Topology{2, 1}, []float32{0.5, -0.3, 0.8})
	if err != nil {
		t.Fatalf("FromWeights: %v", err)
	}

	out, err := nn.Propagate([]float32{-10, -10})
	if err != nil {
		t.Fatalf("Propagate: %v", err)
	}
	if out[0] != 0 {
		t.Errorf("output = %v, want 0", out[0])
	}
}

func TestPropagateOutputLength(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, topology := range []Topology{{1, 1}, {4, 2, 1}, {9, 18, 2}, {3, 5, 5, 7}} {
		nn, err := Random(rng, topology)
		if err != nil {
			t.Fatalf("Random(%v): %v", topology, err)
		}
		out, err := nn.Propagate(make([]float32, topology.Inputs()))
		if err != nil {
			t.Fatalf("Propagate(%v): %v", topology, err)
		}
		if len(out) != topology.Outputs() {
			t.Errorf("topology %v: got %d outputs, want %d", topology, len(out), topology.Outputs())
		}
	}
}

func TestPropagateInputSize(t *testing.T) {
	nn, err := Random(rand.New(rand.NewSource(1)), Topology{3, 2})
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	for _, n := range []int{0, 2, 4} {
		if _, err := nn.Propagate(make([]float32, n)); !errors.Is(err, ErrInputSize) {
			t.Errorf("%d inputs: err = %v, want ErrInputSize", n, err)
		}
	}
}

func TestPropagateDeterministic(t *testing.T) {
	nn, err := Random(rand.New(rand.NewSource(42)), Topology{4, 8, 2})
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	inputs := []float32{0.1, 0.2, 0.3, 0.4}

	a, _ := nn.Propagate(inputs)
	b, _ := nn.Propagate(inputs)
	for i := range a {
		if a[i] != b[i] {
			t.Error("Propagate is not deterministic")
		}
	}
}

func TestWeightsScenario(t *testing.T) {
	weights := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

	nn, err := FromWeights(Topology{3, 2}, weights)
	if err != nil {
		t.Fatalf("FromWeights: %v", err)
	}

	got := nn.Weights()
	if len(got) != len(weights) {
		t.Fatalf("got %d weights, want %d", len(got), len(weights))
	}
	for i := range weights {
		if got[i] != weights[i] {
			t.Errorf("weight %d = %v, want %v", i, got[i], weights[i])
		}
	}

	// Canonical order: bias first, then weights, per neuron.
	layer := nn.Layers()[0]
	if layer.Neurons[0].Bias != 0.1 || layer.Neurons[1].Bias != 0.5 {
		t.Errorf("biases = %v, %v, want 0.1, 0.5", layer.Neurons[0].Bias, layer.Neurons[1].Bias)
	}
}

func TestWeightsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for _, topology := range []Topology{{1, 1}, {3, 2}, {4, 2, 1}, {9, 18, 2}, {2, 7, 3, 5}} {
		weights := make([]float32, topology.WeightCount())
		for i := range weights {
			weights[i] = rng.Float32()*4 - 2
		}

		nn, err := FromWeights(topology, weights)
		if err != nil {
			t.Fatalf("FromWeights(%v): %v", topology, err)
		}
		got := nn.Weights()
		if len(got) != len(weights) {
			t.Fatalf("topology %v: got %d weights, want %d", topology, len(got), len(weights))
		}
		for i := range weights {
			if got[i] != weights[i] {
				t.Errorf("topology %v: weight %d = %v, want %v", topology, i, got[i], weights[i])
			}
		}
	}
}

func TestRandomRoundTripBehavior(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	topology := Topology{4, 8, 2}

	original, err := Random(rng, topology)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	rebuilt, err := FromWeights(topology, original.Weights())
	if err != nil {
		t.Fatalf("FromWeights: %v", err)
	}

	for trial := 0; trial < 20; trial++ {
		inputs := []float32{rng.Float32(), rng.Float32(), rng.Float32(), rng.Float32()}
		a, _ := original.Propagate(inputs)
		b, _ := rebuilt.Propagate(inputs)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("trial %d output %d: %v vs %v", trial, i, a[i], b[i])
			}
		}
	}
}

func TestFromWeightsLengthErrors(t *testing.T) {
	topology := Topology{3, 2}

	tests := []struct {
		name string
		n    int
		want error
	}{
		{"empty", 0, ErrInsufficientWeights},
		{"mid neuron", 6, ErrInsufficientWeights},
		{"one short", 7, ErrInsufficientWeights},
		{"one extra", 9, ErrExcessWeights},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromWeights(topology, make([]float32, tt.n))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTraceMatchesPropagate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	nn, err := Random(rng, Topology{3, 5, 4, 2})
	if err != nil {
		t.Fatal(err)
	}
	inputs := []float32{0.3, -0.7, 1}

	trace, err := nn.Trace(inputs)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(trace) != 4 {
		t.Fatalf("got %d traced layers, want 4", len(trace))
	}
	for i, width := range []int{3, 5, 4, 2} {
		if len(trace[i]) != width {
			t.Errorf("layer %d has %d activations, want %d", i, len(trace[i]), width)
		}
	}

	out, err := nn.Propagate(inputs)
	if err != nil {
		t.Fatal(err)
	}
	for i := range out {
		if out[i] != trace[3][i] {
			t.Errorf("output %d: trace %v, propagate %v", i, trace[3][i], out[i])
		}
	}

	trace[0][0] = 99
	if inputs[0] != 0.3 {
		t.Error("trace aliases the caller's inputs")
	}

	if _, err := nn.Trace([]float32{1}); !errors.Is(err, ErrInputSize) {
		t.Errorf("err = %v, want ErrInputSize", err)
	}
}

func TestTopologyWeightCount(t *testing.T) {
	tests := []struct {
		topology Topology
		want     int
	}{
		{Topology{3, 2}, 8},
		{Topology{4, 2, 1}, 13},
		{Topology{9, 18, 2}, 18*10 + 2*19},
	}

	for _, tt := range tests {
		if got := tt.topology.WeightCount(); got != tt.want {
			t.Errorf("%v.WeightCount() = %d, want %d", tt.topology, got, tt.want)
		}
	}
}

func BenchmarkPropagate(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	nn, err := Random(rng, Topology{9, 18, 2})
	if err != nil {
		b.Fatal(err)
	}
	inputs := make([]float32, 9)
	for i := range inputs {
		inputs[i] = 0.5
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nn.Propagate(inputs)
	}
}
