package simulation

import (
	"fmt"
	"math/rand"
)

// World owns every agent and food item. Iteration order is slice order.
type World struct {
	agents []*Agent
	foods  []Food
}

// randomWorld creates all agents first, then all food.
func randomWorld(rng *rand.Rand, agents, foods int, eye Eye, speed float32) (*World, error) {
	w := &World{
		agents: make([]*Agent, agents),
		foods:  make([]Food, foods),
	}

	for i := range w.agents {
		agent, err := randomAgent(rng, eye, speed)
		if err != nil {
			return nil, fmt.Errorf("creating agent %d: %w", i, err)
		}
		w.agents[i] = agent
	}

	for i := range w.foods {
		w.foods[i] = randomFood(rng)
	}

	return w, nil
}

// Agents returns the agents in iteration order. The slice is a copy; agents
// expose read-only accessors.
func (w *World) Agents() []*Agent {
	out := make([]*Agent, len(w.agents))
	copy(out, w.agents)
	return out
}

// Foods returns a copy of the food items.
func (w *World) Foods() []Food {
	out := make([]Food, len(w.foods))
	copy(out, w.foods)
	return out
}
