package owned

import (
	"math"
	"slices"
	"testing"

	"github.com/nathanieltooley/klefki/core"
)

func TestAddExpMultipleLevels(t *testing.T) {
	registry := testRegistry()
	pokemon, ok := Generate(1, 1, nil, nil).Init(core.SeededRNG(1, 2), registry)
	if !ok {
		t.Fatal("pokemon failed to initialize")
	}

	if ids := moveIDs(&pokemon.Moves); !slices.Equal(ids, []core.MoveID{"tackle"}) {
		t.Fatalf("a level 1 pokemon should only know tackle: got %v", ids)
	}

	leftover := pokemon.AddExp(registry.Moves, 1000)

	if pokemon.Level != 12 {
		t.Fatalf("expected level 12, got %d", pokemon.Level)
	}
	if pokemon.Experience != 644 {
		t.Fatalf("expected 644 leftover experience, got %d", pokemon.Experience)
	}
	if pokemon.Experience >= pokemon.Species.Training.Growth.MaxExp(pokemon.Level) {
		t.Fatal("experience should be under the final level's threshold")
	}

	expected := []core.MoveID{"tackle", "growl", "leech-seed", "vine-whip"}
	if ids := moveIDs(&pokemon.Moves); !slices.Equal(ids, expected) {
		t.Fatalf("learned moves incorrect: expected %v, got %v", expected, ids)
	}

	// razor-leaf doesn't exist so it is skipped entirely
	if !slices.Equal(leftover, []core.MoveID{"poison-powder"}) {
		t.Fatalf("expected poison-powder to be left over, got %v", leftover)
	}
}

func TestAddExpNoLevel(t *testing.T) {
	registry := testRegistry()
	pokemon, _ := Generate(1, 10, nil, nil).Init(core.SeededRNG(1, 2), registry)

	leftover := pokemon.AddExp(registry.Moves, 10)
	if pokemon.Level != 10 || pokemon.Experience != 50 {
		t.Fatalf("expected level 10 with 50 exp, got level %d with %d", pokemon.Level, pokemon.Experience)
	}
	if len(leftover) != 0 {
		t.Fatalf("no moves should be learned without leveling: got %v", leftover)
	}

	if pokemon.ExpToNextLevel() != 950 {
		t.Fatalf("expected 950 exp to next level, got %d", pokemon.ExpToNextLevel())
	}
}

func TestAddExpMaxLevel(t *testing.T) {
	registry := testRegistry()
	pokemon, _ := Generate(1, core.MAX_LEVEL, nil, nil).Init(core.SeededRNG(1, 2), registry)

	pokemon.AddExp(registry.Moves, 1_000_000)
	if pokemon.Level != core.MAX_LEVEL {
		t.Fatalf("level went past the max: %d", pokemon.Level)
	}

	pokemon.AddExp(registry.Moves, math.MaxUint32)
	pokemon.AddExp(registry.Moves, math.MaxUint32)
	if pokemon.Experience != math.MaxUint32 {
		t.Fatalf("experience should stop at the max instead of wrapping, got %d", pokemon.Experience)
	}
}

func TestExpFrom(t *testing.T) {
	pokemon, _ := Generate(81, 14, nil, nil).Init(core.SeededRNG(1, 2), testRegistry())
	if exp := pokemon.ExpFrom(); exp != 130 {
		t.Fatalf("expected 130 exp, got %d", exp)
	}
}
