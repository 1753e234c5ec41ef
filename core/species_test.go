package core

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

// lowSource makes every IntN draw with a non power of two bound return 0.
// A source of 0 would spin forever in the unbiasing loop of IntN.
type lowSource struct{}

func (lowSource) Uint64() uint64 {
	return 1
}

type highSource struct{}

func (highSource) Uint64() uint64 {
	return math.MaxUint64
}

func testSpecies() Species {
	ratio := uint8(50)
	return Species{
		ID:    1,
		Name:  "Bulbasaur",
		Types: NewTypes(TYPE_GRASS, TYPE_POISON),
		Base:  StatSet{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45},
		Learnset: []LearnableMove{
			{Level: 1, Move: "tackle"},
			{Level: 1, Move: "growl"},
			{Level: 7, Move: "leech-seed"},
			{Level: 9, Move: "vine-whip"},
			{Level: 13, Move: "poison-powder"},
		},
		Training: Training{BaseExp: 64, Growth: GROWTH_MEDIUM_SLOW},
		Breeding: Breeding{Gender: &ratio},
	}
}

func TestGrowthRates(t *testing.T) {
	tests := []struct {
		growth   GrowthRate
		level    Level
		expected Experience
	}{
		{GROWTH_MEDIUM, 0, 0},
		{GROWTH_MEDIUM, 1, 1},
		{GROWTH_MEDIUM, 10, 1000},
		{GROWTH_SLOW, 10, 1250},
		{GROWTH_FAST, 10, 800},
		{GROWTH_MEDIUM_SLOW, 2, 9},
		{GROWTH_MEDIUM_SLOW, 10, 560},
		{GROWTH_SLOW_THEN_VERY_FAST, 10, 560},
	}

	for _, test := range tests {
		got := test.growth.MaxExp(test.level)
		if got != test.expected {
			t.Errorf("%s at level %d: expected %d, got %d", test.growth, test.level, test.expected, got)
		}
	}
}

func TestMovesAt(t *testing.T) {
	species := testSpecies()

	moves := species.MovesAt(0, 9)
	expected := []MoveID{"tackle", "growl", "leech-seed", "vine-whip"}
	if !slices.Equal(moves, expected) {
		t.Fatalf("expected %v, got %v", expected, moves)
	}

	moves = species.MovesAt(7, 12)
	if !slices.Equal(moves, []MoveID{"vine-whip"}) {
		t.Fatalf("range should exclude the starting level: got %v", moves)
	}

	if moves := species.MovesAtLevel(13); !slices.Equal(moves, []MoveID{"poison-powder"}) {
		t.Fatalf("expected poison-powder at 13, got %v", moves)
	}
}

func TestExpFrom(t *testing.T) {
	species := testSpecies()
	if exp := species.ExpFrom(7); exp != 64 {
		t.Fatalf("expected 64 exp, got %d", exp)
	}
}

func TestGenerateGender(t *testing.T) {
	species := testSpecies()

	if gender := species.GenerateGender(rand.New(lowSource{})); gender != GENDER_MALE {
		t.Fatalf("low roll should be male: got %s", gender)
	}
	if gender := species.GenerateGender(rand.New(highSource{})); gender != GENDER_FEMALE {
		t.Fatalf("high roll should be female: got %s", gender)
	}

	species.Breeding.Gender = nil
	if gender := species.GenerateGender(SeededRNG(1, 1)); gender != GENDER_NONE {
		t.Fatalf("genderless species got %s", gender)
	}
}

func TestSpeciesJSON(t *testing.T) {
	data := []byte(`{
		"id": 4,
		"name": "Charmander",
		"types": {"primary": "fire"},
		"base": {"hp": 39, "atk": 52, "def": 43, "sp_atk": 60, "sp_def": 50, "speed": 65},
		"moves": [{"level": 1, "move": "scratch"}],
		"training": {"base_exp": 62, "growth_rate": "medium-slow"},
		"breeding": {"gender": 87}
	}`)

	var species Species
	if err := json.Unmarshal(data, &species); err != nil {
		t.Fatal(err)
	}

	if species.ID != 4 || species.Types.Primary != TYPE_FIRE || species.Base.Speed != 65 {
		t.Fatalf("species decoded incorrectly: %+v", species)
	}
	if species.Breeding.Gender == nil || *species.Breeding.Gender != 87 {
		t.Fatal("gender ratio not decoded")
	}
	if species.Training.Growth != GROWTH_MEDIUM_SLOW {
		t.Fatalf("growth rate decoded incorrectly: %s", species.Training.Growth)
	}
}
