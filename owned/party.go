package owned

import (
	"math/rand/v2"

	"github.com/nathanieltooley/klefki/core"
	"github.com/samber/lo"
)

const PARTY_SIZE = 6

type SavedParty []SavedPokemon

// Init resolves every member of the party. Members whose species no longer exists are skipped
// and anything past PARTY_SIZE is dropped.
func (p SavedParty) Init(rng *rand.Rand, registry *core.Registry) Party {
	party := make(Party, 0, min(len(p), PARTY_SIZE))

	for i, saved := range p {
		if len(party) >= PARTY_SIZE {
			internalLogger.Info("party is full, dropping pokemon", "index", i, "pokemon", saved.String())
			continue
		}

		pokemon, ok := saved.Init(rng, registry)
		if !ok {
			internalLogger.Info("skipping party member that could not be initialized", "index", i, "pokemon", saved.String())
			continue
		}

		party = append(party, pokemon)
	}

	return party
}

type Party []*OwnedPokemon

func (p Party) Uninit() SavedParty {
	return lo.Map(p, func(pokemon *OwnedPokemon, _ int) SavedPokemon {
		return pokemon.Uninit()
	})
}

func (p Party) IsFull() bool {
	return len(p) >= PARTY_SIZE
}

// AllFainted reports if no pokemon in the party can battle. An empty party counts as fainted.
func (p Party) AllFainted() bool {
	return lo.EveryBy(p, (*OwnedPokemon).Fainted)
}

// FirstAvailable returns the index of the first pokemon that hasn't fainted
func (p Party) FirstAvailable() (int, bool) {
	_, index, ok := lo.FindIndexOf(p, func(pokemon *OwnedPokemon) bool {
		return !pokemon.Fainted()
	})

	return index, ok
}

func (p Party) HealAll() {
	for _, pokemon := range p {
		pokemon.Heal(nil, nil)
		pokemon.Ailment = nil
	}
}
