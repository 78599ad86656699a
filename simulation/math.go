package simulation

import (
	"math"
	"math/rand"
)

// Position is a point in the unit torus [0,1)x[0,1).
type Position struct {
	X, Y float32
}

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// wrapUnit wraps v into [0, 1).
func wrapUnit(v float32) float32 {
	w := v - float32(math.Floor(float64(v)))
	if w >= 1 {
		// A tiny negative v rounds up to exactly 1; keep it just below.
		w = math.Nextafter32(1, 0)
	}
	return w
}

// distance returns the Euclidean distance between two points.
func distance(a, b Position) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// randomPosition draws x then y uniformly from [0, 1).
func randomPosition(rng *rand.Rand) Position {
	x := rng.Float32()
	y := rng.Float32()
	return Position{X: x, Y: y}
}
