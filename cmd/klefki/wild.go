package main

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/nathanieltooley/klefki/battle"
	"github.com/nathanieltooley/klefki/core"
	"github.com/nathanieltooley/klefki/owned"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	MAX_TURNS               = 50
	PRIZE_MONEY owned.Money = 100
	POTION      core.ItemID = "potion"
)

func randomSpecies(rng *rand.Rand, registry *core.Registry) core.SpeciesID {
	ids := make([]core.SpeciesID, 0, registry.Species.Len())
	for id := range registry.Species.All() {
		if id != registry.Species.UnknownID() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return registry.Species.UnknownID()
	}

	slices.Sort(ids)
	return ids[rng.IntN(len(ids))]
}

func initPokemon(rng *rand.Rand, registry *core.Registry, saved owned.SavedPokemon) (*owned.OwnedPokemon, error) {
	pokemon, ok := saved.Init(rng, registry)
	if !ok {
		return nil, fmt.Errorf("species %d does not exist", saved.Species)
	}

	return pokemon, nil
}

// wildPokemon generates a pokemon within a couple of levels of the party's leader
func wildPokemon(rng *rand.Rand, registry *core.Registry, party owned.Party) *owned.OwnedPokemon {
	level := core.Level(5)
	if leader, ok := party.FirstAvailable(); ok {
		level = party[leader].Level
	}

	low, high := core.MIN_LEVEL, core.MAX_LEVEL
	if level > low+2 {
		low = level - 2
	}
	if level < high-2 {
		high = level + 2
	}
	saved := owned.NewPokeBuilder(randomSpecies(rng, registry), rng).
		SetRandomLevel(low, high).
		SetRandomIvs().
		SetRandomNature().
		Build()

	pokemon, err := initPokemon(rng, registry, saved)
	if err != nil {
		panic(err)
	}

	return pokemon
}

// randomMove picks a move slot that still has pp, or -1 if none do
func randomMove(rng *rand.Rand, pokemon *owned.OwnedPokemon) int {
	usable := make([]int, 0, pokemon.Moves.Len())
	for i, move := range pokemon.Moves.All() {
		if move.PP > 0 {
			usable = append(usable, i)
		}
	}
	if len(usable) == 0 {
		return -1
	}

	return usable[rng.IntN(len(usable))]
}

func runWildBattle(rng *rand.Rand, engine battle.MoveEngine, registry *core.Registry, trainer *owned.Trainer, wild *owned.OwnedPokemon) {
	opponent := battle.NewBattler(wild)
	var player *battle.Battler

	for turn := range MAX_TURNS {
		index, ok := trainer.Party.FirstAvailable()
		if !ok {
			log.Info().Msg("the whole party fainted")
			return
		}

		if player == nil || player.Pokemon != trainer.Party[index] {
			player = battle.NewBattler(trainer.Party[index])
			log.Info().Stringer("pokemon", player).Msg("sent out")
		}
		if player.Pokemon.PercentHP() < 0.3 && trainer.Bag.UseOn(POTION, player.Pokemon) {
			log.Info().Stringer("pokemon", player).Msg("used a potion")
		}

		events := battle.ProcessTurn(rng, engine, []battle.Action{
			{User: player, Opponent: opponent, MoveIndex: randomMove(rng, player.Pokemon)},
			{User: opponent, Opponent: player, MoveIndex: battle.BestMove(opponent, player)},
		})
		logTurn(turn+1, events)

		if wild.Fainted() {
			gained := wild.ExpFrom()
			leftover := player.Pokemon.AddExp(registry.Moves, gained)
			log.Info().
				Stringer("pokemon", player).
				Uint32("exp", uint32(gained)).
				Uint8("level", uint8(player.Pokemon.Level)).
				Strs("unlearned", lo.Map(leftover, func(id core.MoveID, _ int) string { return string(id) })).
				Msg("wild pokemon fainted")

			trainer.Money += PRIZE_MONEY
			if potion, ok := registry.Items.TryGet(POTION); ok && trainer.Bag.Count(POTION) == 0 {
				trainer.Buy(potion, 1)
			}
			return
		}
	}

	log.Info().Stringer("wild", wild).Msg("the wild pokemon ran away")
}

func logTurn(turn int, events []battle.TurnEvent) {
	for _, event := range events {
		entry := log.Info().Int("turn", turn).Stringer("pokemon", event.User)
		if event.Skipped != battle.SKIP_NONE {
			entry.Stringer("skipped", event.Skipped).AnErr("error", event.Err).Msg("could not move")
			continue
		}

		results := make([]string, 0)
		for id, targetResults := range event.Results {
			for _, result := range targetResults {
				results = append(results, fmt.Sprintf("%s: %s", id, result))
			}
		}
		slices.Sort(results)

		entry.Str("move", event.Move.Name).Strs("results", results).Msg("used move")
	}
}
