package simulation

import (
	"math/rand"

	"github.com/pthm-cable/evosim/genetic"
)

// AgentIndividual adapts an agent to genetic.Individual so the engine never
// sees agent fields. Fitness is the food eaten.
type AgentIndividual struct {
	fitness    float64
	chromosome genetic.Chromosome
}

// IndividualFromAgent snapshots an agent's satiation and genome.
func IndividualFromAgent(agent *Agent) *AgentIndividual {
	return &AgentIndividual{
		fitness:    float64(agent.Satiation()),
		chromosome: agent.Chromosome(),
	}
}

// NewAgentIndividual wraps an evolved chromosome with zero fitness.
func NewAgentIndividual(chromosome genetic.Chromosome) *AgentIndividual {
	return &AgentIndividual{chromosome: chromosome}
}

// Chromosome implements genetic.Individual.
func (i *AgentIndividual) Chromosome() genetic.Chromosome { return i.chromosome }

// Fitness implements genetic.Individual.
func (i *AgentIndividual) Fitness() float64 { return i.fitness }

// IntoAgent builds a fresh agent with a brain decoded from the chromosome and
// a random pose.
func (i *AgentIndividual) IntoAgent(rng *rand.Rand, eye Eye, speed float32) (*Agent, error) {
	return agentFromChromosome(rng, i.chromosome, eye, speed)
}
