package simulation

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/evosim/genetic"
)

// Agent is one simulated creature. It owns its eye and brain exclusively.
type Agent struct {
	position  Position
	heading   float32 // radians in [-Pi, Pi]; 0 faces +X
	speed     float32
	satiation int

	eye   Eye
	brain *Brain
}

// newAgent places an agent at a random pose, drawing x, y and then heading.
func newAgent(rng *rand.Rand, eye Eye, brain *Brain, speed float32) *Agent {
	pos := randomPosition(rng)
	heading := rng.Float32()*2*math.Pi - math.Pi

	return &Agent{
		position: pos,
		heading:  normalizeAngle(heading),
		speed:    speed,
		eye:      eye,
		brain:    brain,
	}
}

// randomAgent draws brain weights first, then the pose.
func randomAgent(rng *rand.Rand, eye Eye, speed float32) (*Agent, error) {
	brain, err := RandomBrain(rng, eye)
	if err != nil {
		return nil, err
	}
	return newAgent(rng, eye, brain, speed), nil
}

// agentFromChromosome decodes the brain, then draws a fresh pose.
func agentFromChromosome(rng *rand.Rand, chromosome genetic.Chromosome, eye Eye, speed float32) (*Agent, error) {
	brain, err := BrainFromChromosome(chromosome, eye)
	if err != nil {
		return nil, err
	}
	return newAgent(rng, eye, brain, speed), nil
}

// Position returns the agent's location.
func (a *Agent) Position() Position { return a.position }

// Heading returns the agent's facing angle in radians.
func (a *Agent) Heading() float32 { return a.heading }

// Speed returns the distance moved per tick.
func (a *Agent) Speed() float32 { return a.speed }

// Satiation returns how much food the agent has eaten this generation.
func (a *Agent) Satiation() int { return a.satiation }

// Eye returns the agent's eye.
func (a *Agent) Eye() Eye { return a.eye }

// Brain returns the agent's brain.
func (a *Agent) Brain() *Brain { return a.brain }

// Chromosome flattens the agent's brain into a genome.
func (a *Agent) Chromosome() genetic.Chromosome {
	return a.brain.Chromosome()
}

// move advances the agent along its heading and wraps it onto the torus.
func (a *Agent) move() {
	a.position.X += float32(math.Cos(float64(a.heading))) * a.speed
	a.position.Y += float32(math.Sin(float64(a.heading))) * a.speed

	a.position.X = wrapUnit(a.position.X)
	a.position.Y = wrapUnit(a.position.Y)
}
