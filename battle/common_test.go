package battle

import (
	"math"
	"testing"

	"github.com/nathanieltooley/klefki/core"
	"github.com/nathanieltooley/klefki/owned"
)

// lowSource makes IntN return 0 for bounds that aren't a power of two, 1 for ones that are,
// and Float64 return a value just above 0
type lowSource struct{}

func (lowSource) Uint64() uint64 {
	return 1
}

// highSource makes every bounded draw return its largest value
type highSource struct{}

func (highSource) Uint64() uint64 {
	return math.MaxUint64
}

func ptr[T any](value T) *T {
	return &value
}

const (
	normalmon core.SpeciesID = 1
	ghostmon  core.SpeciesID = 2
)

func testMove(id core.MoveID, moveType core.PokemonType, accuracy *uint8, usage ...core.MoveUsage) core.Move {
	return core.Move{
		ID:       id,
		Name:     string(id),
		Category: core.CATEGORY_PHYSICAL,
		Type:     moveType,
		Accuracy: accuracy,
		PP:       10,
		Usage:    usage,
	}
}

func testRegistry() *core.Registry {
	species := core.NewPokedex(
		core.Species{
			ID:       normalmon,
			Name:     "Normalmon",
			Types:    core.NewTypes(core.TYPE_NORMAL),
			Base:     core.UniformStats(100),
			Training: core.Training{BaseExp: 100, Growth: core.GROWTH_MEDIUM},
		},
		core.Species{
			ID:       ghostmon,
			Name:     "Ghostmon",
			Types:    core.NewTypes(core.TYPE_GHOST),
			Base:     core.UniformStats(100),
			Training: core.Training{BaseExp: 100, Growth: core.GROWTH_MEDIUM},
		},
	)

	tackle := core.DamageUsage(core.PowerDamage(40))
	splash := testMove("splash", core.TYPE_NORMAL, nil, core.TodoUsage())
	splash.PP = 1
	quickAttack := testMove("quick-attack", core.TYPE_NORMAL, nil, tackle)
	quickAttack.Priority = 1

	moves := core.NewMovedex(
		testMove("tackle", core.TYPE_NORMAL, ptr(uint8(100)), tackle),
		testMove("swift", core.TYPE_NORMAL, nil, tackle),
		testMove("double-hit", core.TYPE_NORMAL, nil, tackle, tackle),
		testMove("karate-chop", core.TYPE_FIGHTING, ptr(uint8(100)), tackle),
		testMove("headbutt", core.TYPE_NORMAL, ptr(uint8(100)), tackle, core.ChanceUsage(30, core.FlinchUsage())),
		testMove("sing", core.TYPE_NORMAL, ptr(uint8(55)), core.AilmentUsage(core.AILMENT_SLEEP, core.TemporaryLength(1, 3), 100)),
		testMove("poison-powder", core.TYPE_POISON, nil, core.AilmentUsage(core.AILMENT_POISON, core.PermanentLength(), 100)),
		testMove("growl", core.TYPE_NORMAL, nil, core.StatStageUsage(core.STAT_ATTACK, -1)),
		testMove("string-shot", core.TYPE_BUG, nil, core.StatStageUsage(core.STAT_SPEED, -1)),
		testMove("swords-dance", core.TYPE_NORMAL, nil, core.UserUsage(core.StatStageUsage(core.STAT_ATTACK, 2))),
		testMove("leech", core.TYPE_NORMAL, nil, core.DrainUsage(core.PowerDamage(40), 50)),
		testMove("take-down", core.TYPE_NORMAL, nil, core.DrainUsage(core.PowerDamage(40), -25)),
		testMove("super-fang", core.TYPE_NORMAL, nil, core.DamageUsage(core.PercentCurrentDamage(50))),
		testMove("sonic-boom", core.TYPE_NORMAL, nil, core.DamageUsage(core.ConstantDamage(20))),
		testMove("scripted", core.TYPE_NORMAL, nil, core.ScriptUsage("scripted")),
		splash,
		quickAttack,
	)

	registry, err := core.NewRegistry(species, moves, core.NewItemdex())
	if err != nil {
		panic(err)
	}

	return registry
}

// testBattler creates a level 50 battler with neutral nature and default ivs.
// Every stat but hp is 112, hp is 167.
func testBattler(t *testing.T, registry *core.Registry, species core.SpeciesID, moves ...core.MoveID) *Battler {
	t.Helper()

	saved := owned.NewPokeBuilder(species, core.SeededRNG(1, 2)).
		SetLevel(50).
		SetNature(core.NATURE_HARDY).
		SetGender(core.GENDER_NONE).
		SetMoves(moves...).
		Build()

	pokemon, ok := saved.Init(core.SeededRNG(1, 2), registry)
	if !ok {
		t.Fatalf("could not init test pokemon %d", species)
	}

	return NewBattler(pokemon)
}

func getMove(t *testing.T, registry *core.Registry, id core.MoveID) *core.Move {
	t.Helper()

	move, ok := registry.Moves.TryGet(id)
	if !ok {
		t.Fatalf("missing test move %s", id)
	}

	return move
}

func expectResults(t *testing.T, got []MoveResult, expected ...MoveResult) {
	t.Helper()

	if len(got) != len(expected) {
		t.Fatalf("expected %d results %v, got %d: %v", len(expected), expected, len(got), got)
	}

	for i := range got {
		if !got[i].Equal(expected[i]) {
			t.Fatalf("result %d: expected %s, got %s", i, expected[i], got[i])
		}
	}
}
