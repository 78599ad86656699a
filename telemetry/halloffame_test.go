package telemetry

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/pthm-cable/evosim/genetic"
)

func TestHallOfFameInsertOrder(t *testing.T) {
	hof := NewHallOfFame(3)

	for i, fitness := range []float64{2, 5, 1, 5, 3} {
		hof.insertEntry(HallEntry{Generation: i, Fitness: fitness})
	}

	if hof.Size() != 3 {
		t.Fatalf("size = %d, want 3", hof.Size())
	}
	want := []struct {
		generation int
		fitness    float64
	}{{1, 5}, {3, 5}, {4, 3}}
	for i, w := range want {
		got := hof.hall[i]
		if got.Generation != w.generation || got.Fitness != w.fitness {
			t.Errorf("entry %d = gen %d fitness %v, want gen %d fitness %v",
				i, got.Generation, got.Fitness, w.generation, w.fitness)
		}
	}
	if hof.TopFitness() != 5 {
		t.Errorf("top fitness = %v, want 5", hof.TopFitness())
	}
}

func TestHallOfFameRejectsWhenFull(t *testing.T) {
	hof := NewHallOfFame(2)
	hof.insertEntry(HallEntry{Fitness: 4})
	hof.insertEntry(HallEntry{Fitness: 3})

	if hof.insertEntry(HallEntry{Fitness: 1}) {
		t.Error("low entry admitted into a full hall")
	}
	if !hof.insertEntry(HallEntry{Fitness: 10}) {
		t.Error("high entry rejected")
	}
	if hof.Size() != 2 || hof.hall[1].Fitness != 4 {
		t.Errorf("hall = %+v, want [10 4]", hof.hall)
	}
}

func TestHallOfFameZeroCapacity(t *testing.T) {
	hof := NewHallOfFame(0)
	if hof.insertEntry(HallEntry{Fitness: 1}) {
		t.Error("entry admitted into zero-capacity hall")
	}
	if _, ok := hof.Best(); ok {
		t.Error("Best reported an entry for an empty hall")
	}
}

func TestHallOfFameConsiderGeneration(t *testing.T) {
	sim, stats := trainOneGeneration(t, 3)
	hof := NewHallOfFame(5)

	scored := sim.LastGeneration()
	added := hof.ConsiderGeneration(1, scored)

	feeders := 0
	for _, individual := range scored {
		if individual.Fitness() > 0 {
			feeders++
		}
	}
	wantAdded := min(feeders, 5)
	if added != wantAdded || hof.Size() != wantAdded {
		t.Errorf("added=%d size=%d, want %d", added, hof.Size(), wantAdded)
	}
	if feeders > 0 && hof.TopFitness() != stats.MaxFitness {
		t.Errorf("top fitness = %v, want %v", hof.TopFitness(), stats.MaxFitness)
	}

	if best, ok := hof.Best(); ok {
		if !best.Chromosome.Equal(scored[best.Slot].Chromosome()) {
			t.Error("best entry genome does not match its slot")
		}
	}
}

func TestHallOfFameMarshalJSON(t *testing.T) {
	hof := NewHallOfFame(2)
	hof.insertEntry(HallEntry{Generation: 7, Slot: 2, Fitness: 3, Chromosome: genetic.Chromosome{0.5, -0.25}})

	data, err := json.Marshal(hof)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded []hallEntryJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d entries, want 1", len(decoded))
	}
	got := decoded[0]
	if got.Generation != 7 || got.Slot != 2 || got.Fitness != 3 || len(got.Genes) != 2 || got.Genes[1] != -0.25 {
		t.Errorf("decoded %+v", got)
	}
}

func TestHallOfFameAdmittedCountsSurvivors(t *testing.T) {
	sim, stats := trainOneGeneration(t, 3)
	if stats.MaxFitness == 0 {
		t.Skip("no agent fed in the first generation")
	}

	// Ascending order makes every insert evict the one before it.
	scored := sim.LastGeneration()
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Fitness() < scored[j].Fitness()
	})

	hof := NewHallOfFame(1)
	if got := hof.ConsiderGeneration(1, scored); got != 1 {
		t.Errorf("generation 1 admitted %d, want 1", got)
	}

	// Equal fitness never displaces the earlier entry.
	if got := hof.ConsiderGeneration(2, scored); got != 0 {
		t.Errorf("generation 2 admitted %d, want 0", got)
	}
	if best, _ := hof.Best(); best.Generation != 1 || best.Fitness != stats.MaxFitness {
		t.Errorf("best = generation %d fitness %v, want generation 1 fitness %v", best.Generation, best.Fitness, stats.MaxFitness)
	}
}
