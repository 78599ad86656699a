// Package simulation runs agents that see food, decide with a neural brain,
// move on a unit torus and evolve between generations.
//
// A simulation is a pure function of its state and the single *rand.Rand
// passed to each call. Randomness is consumed in a fixed order:
//
//   - construction: for each agent, brain weights then x, y, heading; then x, y
//     for each food item
//   - Step, feeding: agent-major then food-minor; each eaten food draws x, y
//   - Step, evolution: the genetic algorithm (per child: select, select,
//     crossover, mutate), then for each child brain decode and x, y, heading,
//     then x, y for every food item
//
// Two simulations built from the same seed and stepped the same way stay
// bit-identical.
package simulation

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/evosim/config"
	"github.com/pthm-cable/evosim/genetic"
)

// Simulation owns the world, the genetic algorithm and the generation clock.
type Simulation struct {
	world *World
	ga    *genetic.GeneticAlgorithm[*AgentIndividual]
	eye   Eye

	age        int // ticks since the last evolution
	generation int
	ticks      int64

	// evaluated is the population scored at the last generation boundary.
	evaluated []*AgentIndividual

	generationLength int
	speedMin         float32
	speedMax         float32
	speedAccel       float32
	rotationAccel    float32
	initialSpeed     float32
	feedRadius       float32
}

// Random creates a simulation from the embedded default configuration.
func Random(rng *rand.Rand) (*Simulation, error) {
	return New(config.Default(), rng)
}

// New creates a simulation with a randomly populated world.
func New(cfg *config.Config, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mutation, err := genetic.NewGaussianMutation(
		float32(cfg.Evolution.MutationChance),
		float32(cfg.Evolution.MutationCoeff),
	)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		ga: genetic.New[*AgentIndividual](
			genetic.RouletteWheelSelection{},
			genetic.UniformCrossover{},
			mutation,
			NewAgentIndividual,
		),
		eye:              NewEye(cfg.Eye),
		generationLength: cfg.Evolution.GenerationLength,
		speedMin:         float32(cfg.Agent.SpeedMin),
		speedMax:         float32(cfg.Agent.SpeedMax),
		speedAccel:       float32(cfg.Agent.SpeedAccel),
		rotationAccel:    float32(cfg.Agent.RotationAccel),
		initialSpeed:     float32(cfg.Agent.InitialSpeed),
		feedRadius:       float32(cfg.Agent.FeedRadius),
	}

	s.world, err = randomWorld(rng, cfg.World.Agents, cfg.World.Foods, s.eye, s.initialSpeed)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// World returns the world for read-only inspection.
func (s *Simulation) World() *World { return s.world }

// Age returns the number of ticks since the last evolution.
func (s *Simulation) Age() int { return s.age }

// Generation returns how many evolutions have run.
func (s *Simulation) Generation() int { return s.generation }

// Ticks returns the total number of steps taken.
func (s *Simulation) Ticks() int64 { return s.ticks }

// LastGeneration returns the individuals scored at the most recent
// generation boundary, in agent order, or nil before the first evolution.
func (s *Simulation) LastGeneration() []*AgentIndividual {
	if s.evaluated == nil {
		return nil
	}
	out := make([]*AgentIndividual, len(s.evaluated))
	copy(out, s.evaluated)
	return out
}

// Step advances the simulation one tick: feeding, brains, movement, then the
// generation check. It returns statistics only when the tick ended a
// generation; otherwise the statistics are nil.
func (s *Simulation) Step(rng *rand.Rand) (*genetic.Statistics, error) {
	s.processCollisions(rng)
	if err := s.processBrains(); err != nil {
		return nil, err
	}
	s.processMovement()

	s.ticks++
	s.age++
	if s.age > s.generationLength {
		stats, err := s.evolve(rng)
		if err != nil {
			return nil, err
		}
		return &stats, nil
	}
	return nil, nil
}

// Train steps until the current generation ends and returns its statistics.
func (s *Simulation) Train(rng *rand.Rand) (genetic.Statistics, error) {
	for {
		stats, err := s.Step(rng)
		if err != nil {
			return genetic.Statistics{}, err
		}
		if stats != nil {
			return *stats, nil
		}
	}
}

// processCollisions feeds every agent touching a food item and relocates it.
func (s *Simulation) processCollisions(rng *rand.Rand) {
	for _, agent := range s.world.agents {
		for i := range s.world.foods {
			food := &s.world.foods[i]
			if distance(agent.position, food.Position) <= s.feedRadius {
				agent.satiation++
				food.relocate(rng)
			}
		}
	}
}

// processBrains lets every agent look around and adjust speed and heading.
func (s *Simulation) processBrains() error {
	for i, agent := range s.world.agents {
		vision := agent.eye.ProcessVision(agent.position, agent.heading, s.world.foods)

		speed, rotation, err := agent.brain.Decide(vision)
		if err != nil {
			return fmt.Errorf("agent %d: %w", i, err)
		}

		speed = clampFloat(speed, -s.speedAccel, s.speedAccel)
		rotation = clampFloat(rotation, -s.rotationAccel, s.rotationAccel)

		agent.speed = clampFloat(agent.speed+speed, s.speedMin, s.speedMax)
		agent.heading = normalizeAngle(agent.heading + rotation)
	}
	return nil
}

// processMovement advances every agent along its heading.
func (s *Simulation) processMovement() {
	for _, agent := range s.world.agents {
		agent.move()
	}
}

// evolve replaces every agent with an evolved child and scatters the food.
func (s *Simulation) evolve(rng *rand.Rand) (genetic.Statistics, error) {
	s.age = 0

	population := make([]*AgentIndividual, len(s.world.agents))
	for i, agent := range s.world.agents {
		population[i] = IndividualFromAgent(agent)
	}

	evolved, stats, err := s.ga.Evolve(rng, population)
	if err != nil {
		return genetic.Statistics{}, fmt.Errorf("evolving generation %d: %w", s.generation, err)
	}
	s.evaluated = population

	agents := make([]*Agent, len(evolved))
	for i, individual := range evolved {
		agents[i], err = individual.IntoAgent(rng, s.eye, s.initialSpeed)
		if err != nil {
			return genetic.Statistics{}, fmt.Errorf("rebuilding agent %d: %w", i, err)
		}
	}
	s.world.agents = agents

	for i := range s.world.foods {
		s.world.foods[i].relocate(rng)
	}

	s.generation++
	return stats, nil
}
