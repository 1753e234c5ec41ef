package owned

import (
	"math/rand/v2"

	"github.com/go-logr/logr"
	"github.com/nathanieltooley/klefki/core"
	"github.com/samber/lo"
)

var builderLogger = func() logr.Logger {
	return internalLogger.WithName("pokemon_builder")
}

// PokemonBuilder builds a SavedPokemon step by step. Anything left unset gets generated on Init.
type PokemonBuilder struct {
	poke SavedPokemon
	rng  *rand.Rand
}

func NewPokeBuilder(species core.SpeciesID, rng *rand.Rand) *PokemonBuilder {
	return &PokemonBuilder{
		poke: Generate(species, core.MIN_LEVEL, nil, nil),
		rng:  rng,
	}
}

func (pb *PokemonBuilder) SetEvs(evs core.StatSet) *PokemonBuilder {
	pb.poke.EVs = evs

	builderLogger().V(1).Info("Setting EVs",
		"HP", evs.HP,
		"ATTACK", evs.Attack,
		"DEF", evs.Defense,
		"SPATTACK", evs.SpAttack,
		"SPDEF", evs.SpDefense,
		"SPEED", evs.Speed)

	return pb
}

func (pb *PokemonBuilder) SetIvs(ivs core.StatSet) *PokemonBuilder {
	pb.poke.IVs = ivs

	builderLogger().V(1).Info("Setting IVs",
		"HP", ivs.HP,
		"ATTACK", ivs.Attack,
		"DEF", ivs.Defense,
		"SPATTACK", ivs.SpAttack,
		"SPDEF", ivs.SpDefense,
		"SPEED", ivs.Speed)

	return pb
}

func (pb *PokemonBuilder) SetPerfectIvs() *PokemonBuilder {
	builderLogger().V(1).Info("Setting Perfect IVs")
	return pb.SetIvs(core.UniformStats(core.MAX_IV))
}

func (pb *PokemonBuilder) SetRandomIvs() *PokemonBuilder {
	builderLogger().V(1).Info("Setting Random IVs")
	return pb.SetIvs(core.RandomIVs(pb.rng))
}

// SetRandomEvs spreads the full EV total over random stats, respecting the per stat cap
func (pb *PokemonBuilder) SetRandomEvs() *PokemonBuilder {
	var evs core.StatSet

	for evs.Total() < core.MAX_TOTAL_EV {
		stat := core.StatType(pb.rng.IntN(int(core.STAT_SPEED) + 1))
		evs.IncrementEV(stat, uint8(pb.rng.IntN(core.MAX_EV)+1))
	}

	builderLogger().V(1).Info("Setting Random EVs", "total", evs.Total())
	return pb.SetEvs(evs)
}

func (pb *PokemonBuilder) SetLevel(level core.Level) *PokemonBuilder {
	pb.poke.Level = min(max(level, core.MIN_LEVEL), core.MAX_LEVEL)
	return pb
}

// SetRandomLevel picks a level in [low, high]
func (pb *PokemonBuilder) SetRandomLevel(low core.Level, high core.Level) *PokemonBuilder {
	if high < low {
		low, high = high, low
	}

	level := low + core.Level(pb.rng.UintN(uint(high-low)+1))
	return pb.SetLevel(level)
}

func (pb *PokemonBuilder) SetNature(nature core.Nature) *PokemonBuilder {
	pb.poke.Nature = &nature
	return pb
}

func (pb *PokemonBuilder) SetRandomNature() *PokemonBuilder {
	return pb.SetNature(core.RandomNature(pb.rng))
}

func (pb *PokemonBuilder) SetGender(gender core.Gender) *PokemonBuilder {
	pb.poke.Gender = &gender
	return pb
}

func (pb *PokemonBuilder) SetNickname(nickname string) *PokemonBuilder {
	pb.poke.Nickname = nickname
	return pb
}

func (pb *PokemonBuilder) SetItem(item core.ItemID) *PokemonBuilder {
	pb.poke.Item = &item
	return pb
}

func (pb *PokemonBuilder) SetMoves(moves ...core.MoveID) *PokemonBuilder {
	if len(moves) > MOVESET_SIZE {
		builderLogger().Info("Too many moves given, extra moves are dropped", "count", len(moves))
		moves = moves[:MOVESET_SIZE]
	}

	pb.poke.Moves = lo.Map(moves, func(id core.MoveID, _ int) SavedMove {
		return NewSavedMove(id)
	})

	return pb
}

// SetRandomMoves picks up to MOVESET_SIZE distinct moves from possibleMoves
func (pb *PokemonBuilder) SetRandomMoves(possibleMoves []core.MoveID) *PokemonBuilder {
	if len(possibleMoves) == 0 {
		builderLogger().Info("This Pokemon was given no available moves to randomize with!")
		return pb
	}

	shuffled := lo.Uniq(possibleMoves)
	pb.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return pb.SetMoves(shuffled[:min(len(shuffled), MOVESET_SIZE)]...)
}

func (pb *PokemonBuilder) Build() SavedPokemon {
	builderLogger().V(1).Info("Building pokemon", "pokemon", pb.poke.String())
	return pb.poke
}
