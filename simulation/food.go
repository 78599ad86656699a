package simulation

import "math/rand"

// Food is a single edible item. It is relocated, never removed, when eaten.
type Food struct {
	Position Position
}

func randomFood(rng *rand.Rand) Food {
	return Food{Position: randomPosition(rng)}
}

// relocate moves the food to a uniformly random position, drawing x then y.
func (f *Food) relocate(rng *rand.Rand) {
	f.Position = randomPosition(rng)
}
