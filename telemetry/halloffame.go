package telemetry

import (
	"encoding/json"
	"sort"

	"github.com/pthm-cable/evosim/genetic"
	"github.com/pthm-cable/evosim/simulation"
)

// HallEntry records one high-scoring brain genome.
type HallEntry struct {
	Generation int
	Slot       int // agent index within its generation
	Fitness    float64
	Chromosome genetic.Chromosome
}

// HallOfFame keeps the best genomes seen across all generations, sorted by
// descending fitness. Ties keep the earlier entry first.
type HallOfFame struct {
	hall    []HallEntry
	maxSize int
}

// NewHallOfFame creates a hall of fame with the given capacity.
func NewHallOfFame(maxSize int) *HallOfFame {
	return &HallOfFame{
		hall:    make([]HallEntry, 0, maxSize),
		maxSize: maxSize,
	}
}

// ConsiderGeneration offers every scored individual of a generation and
// returns how many of them remain in the hall. Individuals that never ate
// are ignored.
func (hof *HallOfFame) ConsiderGeneration(generation int, scored []*simulation.AgentIndividual) int {
	for slot, individual := range scored {
		if individual.Fitness() <= 0 {
			continue
		}
		entry := HallEntry{
			Generation: generation,
			Slot:       slot,
			Fitness:    individual.Fitness(),
			Chromosome: individual.Chromosome().Clone(),
		}
		hof.insertEntry(entry)
	}

	// Earlier inserts may have been pushed out by fitter ones from the same pass
	admitted := 0
	for _, entry := range hof.hall {
		if entry.Generation == generation {
			admitted++
		}
	}
	return admitted
}

// insertEntry adds an entry to the hall, maintaining sorted order by fitness.
// If the hall is full, the lowest-fitness entry is removed.
func (hof *HallOfFame) insertEntry(entry HallEntry) bool {
	if hof.maxSize <= 0 {
		return false
	}

	// Find insertion point (sorted descending by fitness)
	idx := sort.Search(len(hof.hall), func(i int) bool {
		return hof.hall[i].Fitness < entry.Fitness
	})

	// If hall is full and entry would be last (lowest), skip it
	if len(hof.hall) >= hof.maxSize && idx >= hof.maxSize {
		return false
	}

	hof.hall = append(hof.hall, HallEntry{})
	copy(hof.hall[idx+1:], hof.hall[idx:])
	hof.hall[idx] = entry

	if len(hof.hall) > hof.maxSize {
		hof.hall = hof.hall[:hof.maxSize]
	}
	return true
}

// Size returns the number of entries.
func (hof *HallOfFame) Size() int {
	return len(hof.hall)
}

// TopFitness returns the highest fitness in the hall, or 0 if it is empty.
func (hof *HallOfFame) TopFitness() float64 {
	if len(hof.hall) == 0 {
		return 0
	}
	return hof.hall[0].Fitness
}

// Best returns the highest-scoring entry.
func (hof *HallOfFame) Best() (HallEntry, bool) {
	if len(hof.hall) == 0 {
		return HallEntry{}, false
	}
	return hof.hall[0], true
}

// hallEntryJSON is the JSON-serializable representation of a hall entry.
type hallEntryJSON struct {
	Generation int       `json:"generation"`
	Slot       int       `json:"slot"`
	Fitness    float64   `json:"fitness"`
	Genes      []float32 `json:"genes"`
}

// MarshalJSON serializes the hall of fame, best entry first. Genes are in
// the flat order the brain network decodes.
func (hof *HallOfFame) MarshalJSON() ([]byte, error) {
	entries := make([]hallEntryJSON, len(hof.hall))
	for i, entry := range hof.hall {
		entries[i] = hallEntryJSON{
			Generation: entry.Generation,
			Slot:       entry.Slot,
			Fitness:    entry.Fitness,
			Genes:      entry.Chromosome.Genes(),
		}
	}
	return json.MarshalIndent(entries, "", "  ")
}
