package genetic

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestRouletteWheelDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	fitness := []float64{1, 2, 3, 4}
	const draws = 100000

	observed := make([]float64, len(fitness))
	for i := 0; i < draws; i++ {
		idx, err := RouletteWheelSelection{}.Select(rng, fitness)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		observed[idx]++
	}

	expected := make([]float64, len(fitness))
	for i, f := range fitness {
		expected[i] = f / 10 * draws
		got := observed[i] / draws
		if math.Abs(got-f/10) > 0.01 {
			t.Errorf("individual %d selected %.4f of the time, want %.4f", i, got, f/10)
		}
	}

	// 3 degrees of freedom: 16.27 is the 0.999 quantile.
	if chi := stat.ChiSquare(observed, expected); chi > 16.27 {
		t.Errorf("chi-square %.2f too large for proportional selection", chi)
	}
}

func TestRouletteWheelZeroFitnessIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	fitness := []float64{0, 0, 0, 0}
	const draws = 40000

	counts := make([]int, len(fitness))
	for i := 0; i < draws; i++ {
		idx, err := RouletteWheelSelection{}.Select(rng, fitness)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		counts[idx]++
	}

	for i, c := range counts {
		if got := float64(c) / draws; math.Abs(got-0.25) > 0.02 {
			t.Errorf("individual %d selected %.4f of the time, want 0.25", i, got)
		}
	}
}

func TestRouletteWheelNeverPicksZeroFitness(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	fitness := []float64{0, 5, 0, 1, 0}

	for i := 0; i < 10000; i++ {
		idx, err := RouletteWheelSelection{}.Select(rng, fitness)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		if fitness[idx] == 0 {
			t.Fatalf("selected individual %d with zero fitness", idx)
		}
	}
}

func TestRouletteWheelErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		fitness []float64
		want    error
	}{
		{"empty", nil, ErrEmptyPopulation},
		{"negative", []float64{1, -0.5}, ErrInvalidFitness},
		{"nan", []float64{math.NaN(), 1}, ErrInvalidFitness},
		{"positive infinity", []float64{1, math.Inf(1), 2}, ErrInvalidFitness},
		{"negative infinity", []float64{math.Inf(-1), 1}, ErrInvalidFitness},
		{"overflowing total", []float64{math.MaxFloat64, math.MaxFloat64}, ErrInvalidFitness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RouletteWheelSelection{}.Select(rng, tt.fitness)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
