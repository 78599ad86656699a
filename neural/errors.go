package neural

import "errors"

var (
	// ErrInvalidTopology is returned for fewer than two layers or a non-positive width.
	ErrInvalidTopology = errors.New("neural: invalid topology")

	// ErrInputSize is returned when an input vector does not match the first layer's width.
	ErrInputSize = errors.New("neural: input size mismatch")

	// ErrInsufficientWeights is returned when a flat weight sequence runs out mid-network.
	ErrInsufficientWeights = errors.New("neural: insufficient weights")

	// ErrExcessWeights is returned when weights remain after the last neuron is built.
	ErrExcessWeights = errors.New("neural: excess weights")
)
