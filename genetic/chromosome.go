// Package genetic implements a generational genetic algorithm over flat,
// real-valued genomes.
package genetic

// Chromosome is a flat genome. Gene order is significant and the length is
// fixed once constructed.
type Chromosome []float32

// NewChromosome copies genes into a new chromosome.
func NewChromosome(genes []float32) Chromosome {
	c := make(Chromosome, len(genes))
	copy(c, genes)
	return c
}

// Len returns the number of genes.
func (c Chromosome) Len() int {
	return len(c)
}

// Clone returns an independent copy of the chromosome.
func (c Chromosome) Clone() Chromosome {
	return NewChromosome(c)
}

// Genes returns a copy of the genes as a plain slice.
func (c Chromosome) Genes() []float32 {
	out := make([]float32, len(c))
	copy(out, c)
	return out
}

// Equal reports whether both chromosomes hold exactly the same genes.
func (c Chromosome) Equal(other Chromosome) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}
