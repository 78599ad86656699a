package genetic

// Individual is anything the engine can evolve: it exposes a genome and a
// fitness score. Fitness must be non-negative for roulette-wheel selection.
type Individual interface {
	Chromosome() Chromosome
	Fitness() float64
}

// Factory builds a fresh individual from an evolved chromosome. The new
// individual has not been evaluated yet, so its fitness is the neutral baseline.
type Factory[I Individual] func(Chromosome) I
