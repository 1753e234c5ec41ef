package owned

import (
	"math"

	"github.com/nathanieltooley/klefki/core"
)

// lowSource makes IntN return 0 for any bound that isn't a power of two
type lowSource struct{}

func (lowSource) Uint64() uint64 {
	return 1
}

type highSource struct{}

func (highSource) Uint64() uint64 {
	return math.MaxUint64
}

func ptr[T any](value T) *T {
	return &value
}

func testMove(id core.MoveID, moveType core.PokemonType, pp uint8, usage ...core.MoveUsage) core.Move {
	return core.Move{
		ID:       id,
		Name:     string(id),
		Category: core.CATEGORY_PHYSICAL,
		Type:     moveType,
		PP:       pp,
		Usage:    usage,
	}
}

func testRegistry() *core.Registry {
	bulbasaur := core.Species{
		ID:    1,
		Name:  "Bulbasaur",
		Types: core.NewTypes(core.TYPE_GRASS, core.TYPE_POISON),
		Base:  core.StatSet{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45},
		Learnset: []core.LearnableMove{
			{Level: 1, Move: "tackle"},
			{Level: 3, Move: "growl"},
			{Level: 7, Move: "leech-seed"},
			{Level: 9, Move: "vine-whip"},
			{Level: 11, Move: "poison-powder"},
			{Level: 12, Move: "razor-leaf"},
		},
		Training: core.Training{BaseExp: 64, Growth: core.GROWTH_MEDIUM},
		Breeding: core.Breeding{Gender: ptr(uint8(87))},
	}

	magnemite := core.Species{
		ID:       81,
		Name:     "Magnemite",
		Types:    core.NewTypes(core.TYPE_ELECTRIC, core.TYPE_STEEL),
		Base:     core.StatSet{HP: 25, Attack: 35, Defense: 70, SpAttack: 95, SpDefense: 55, Speed: 45},
		Learnset: []core.LearnableMove{{Level: 1, Move: "tackle"}},
		Training: core.Training{BaseExp: 65, Growth: core.GROWTH_MEDIUM},
	}

	moves := core.NewMovedex(
		testMove("tackle", core.TYPE_NORMAL, 35, core.DamageUsage(core.PowerDamage(40))),
		testMove("growl", core.TYPE_NORMAL, 40, core.StatStageUsage(core.STAT_ATTACK, -1)),
		testMove("leech-seed", core.TYPE_GRASS, 10, core.TodoUsage()),
		testMove("vine-whip", core.TYPE_GRASS, 25, core.DamageUsage(core.PowerDamage(45))),
		testMove("poison-powder", core.TYPE_POISON, 35, core.AilmentUsage(core.AILMENT_POISON, core.PermanentLength(), 100)),
		// no razor-leaf, bulbasaur learns a move that does not exist
	)

	items := core.NewItemdex(
		core.Item{
			ID:    "potion",
			Name:  "Potion",
			Price: 300,
			Usage: core.ItemUsage{Kind: core.ITEM_USAGE_ACTIONS, Actions: []core.ItemAction{core.HealAction(20)}},
		},
		core.Item{
			ID:        "revive",
			Name:      "Revive",
			Price:     1500,
			Stackable: ptr(uint16(5)),
			Usage: core.ItemUsage{
				Conditions: []core.ItemCondition{core.CONDITION_FAINTED},
				Kind:       core.ITEM_USAGE_ACTIONS,
				Actions:    []core.ItemAction{core.HealAction(30)},
			},
		},
		core.Item{
			ID:   "antidote",
			Name: "Antidote",
			Usage: core.ItemUsage{
				Kind:    core.ITEM_USAGE_ACTIONS,
				Actions: []core.ItemAction{core.CureAction(ptr(core.AILMENT_POISON))},
			},
		},
		core.Item{
			ID:       "poke-ball",
			Name:     "Poke Ball",
			Category: core.ITEM_CATEGORY_POKEBALLS,
			Usage:    core.ItemUsage{Kind: core.ITEM_USAGE_POKEBALL},
		},
		core.Item{
			ID:       "bike",
			Name:     "Bike",
			Category: core.ITEM_CATEGORY_KEY_ITEMS,
			Usage:    core.ItemUsage{Kind: core.ITEM_USAGE_NONE, Consume: ptr(false)},
		},
	)

	registry, err := core.NewRegistry(core.NewPokedex(bulbasaur, magnemite), moves, items)
	if err != nil {
		panic(err)
	}

	return registry
}
