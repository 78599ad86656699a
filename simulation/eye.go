package simulation

import (
	"math"

	"github.com/pthm-cable/evosim/config"
)

// Eye turns an agent's pose and the food around it into a vision vector with
// one reading per angular cell.
//
// The field of view spans FOVAngle radians centered on the heading and reaches
// FOVRange world units. It is split into Cells equal sectors ordered from the
// heading's clockwise edge (most negative relative angle) to its
// counter-clockwise edge. Each visible food item adds (range - dist) / range to
// the one sector it falls in, so readings decay linearly to zero at the range
// boundary and accumulate across items.
type Eye struct {
	fovRange float32
	fovAngle float32
	cells    int
}

// NewEye builds an eye from configuration.
func NewEye(cfg config.EyeConfig) Eye {
	return Eye{
		fovRange: float32(cfg.FOVRange),
		fovAngle: float32(cfg.FOVAngle),
		cells:    cfg.Cells,
	}
}

// Cells returns the number of sectors, which is also the brain's input width.
func (e Eye) Cells() int { return e.cells }

// FOVRange returns the maximum sight distance.
func (e Eye) FOVRange() float32 { return e.fovRange }

// FOVAngle returns the full angular width of the field of view.
func (e Eye) FOVAngle() float32 { return e.fovAngle }

// ProcessVision computes the vision vector for an agent at pos facing heading.
func (e Eye) ProcessVision(pos Position, heading float32, foods []Food) []float32 {
	cells := make([]float32, e.cells)
	halfFOV := e.fovAngle / 2

	for _, food := range foods {
		dx := food.Position.X - pos.X
		dy := food.Position.Y - pos.Y
		dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))

		if dist >= e.fovRange {
			continue
		}

		// Angle to food relative to heading
		angleToFood := float32(math.Atan2(float64(dy), float64(dx)))
		relativeAngle := normalizeAngle(angleToFood - heading)

		if relativeAngle < -halfFOV || relativeAngle > halfFOV {
			continue
		}

		// Map [-halfFOV, halfFOV] onto [0, cells)
		cell := int((relativeAngle + halfFOV) / e.fovAngle * float32(e.cells))
		if cell >= e.cells {
			cell = e.cells - 1
		} else if cell < 0 {
			cell = 0
		}

		cells[cell] += (e.fovRange - dist) / e.fovRange
	}

	return cells
}
