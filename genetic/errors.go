package genetic

import "errors"

var (
	// ErrEmptyPopulation is returned when selection or evolution runs on no individuals.
	ErrEmptyPopulation = errors.New("genetic: empty population")

	// ErrChromosomeLengthMismatch is returned when crossover parents differ in length.
	ErrChromosomeLengthMismatch = errors.New("genetic: chromosome length mismatch")

	// ErrInvalidParameters is returned when a strategy is built with out-of-range settings.
	ErrInvalidParameters = errors.New("genetic: invalid parameters")

	// ErrInvalidFitness is returned when a fitness value is negative or NaN.
	ErrInvalidFitness = errors.New("genetic: invalid fitness")
)
