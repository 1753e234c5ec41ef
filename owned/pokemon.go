// Package owned holds the pokemon, moves and items a trainer owns.
// Every entity comes in two forms: a Saved form that only holds IDs and can be persisted,
// and an Owned form resolved against a core.Registry that the rest of the game works with.
// Init and Uninit convert between the two.
package owned

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/nathanieltooley/klefki/core"
)

// SavedPokemon is a pokemon as it is persisted. Gender, nature and hp are optional
// and get generated on Init when missing.
type SavedPokemon struct {
	Species    core.SpeciesID    `json:"species"`
	Level      core.Level        `json:"level"`
	Nickname   string            `json:"nickname,omitempty"`
	Gender     *core.Gender      `json:"gender,omitempty"`
	Nature     *core.Nature      `json:"nature,omitempty"`
	HP         *core.Health      `json:"hp,omitempty"`
	IVs        core.StatSet      `json:"ivs"`
	EVs        core.StatSet      `json:"evs"`
	Friendship core.Friendship   `json:"friendship"`
	Ailment    *core.LiveAilment `json:"ailment,omitempty"`
	Moves      []SavedMove       `json:"moves,omitempty"`
	Item       *core.ItemID      `json:"item,omitempty"`
	Experience core.Experience   `json:"experience"`
}

// Generate creates a saved pokemon with everything but the species and level left to Init.
// nil ivs use core.DefaultIVs.
func Generate(species core.SpeciesID, level core.Level, gender *core.Gender, ivs *core.StatSet) SavedPokemon {
	pokemon := SavedPokemon{
		Species:    species,
		Level:      max(level, core.MIN_LEVEL),
		Gender:     gender,
		IVs:        core.DefaultIVs(),
		Friendship: core.DEFAULT_FRIENDSHIP,
	}

	if ivs != nil {
		pokemon.IVs = *ivs
	}

	return pokemon
}

type savedPokemonJSON SavedPokemon

// UnmarshalJSON fills in the default ivs and friendship when they are left out
func (p *SavedPokemon) UnmarshalJSON(data []byte) error {
	decoded := savedPokemonJSON{
		IVs:        core.DefaultIVs(),
		Friendship: core.DEFAULT_FRIENDSHIP,
	}

	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*p = SavedPokemon(decoded)
	if p.Level == 0 {
		p.Level = core.MIN_LEVEL
	}

	return nil
}

func (p SavedPokemon) String() string {
	return fmt.Sprintf("ID %d, Lv. %d", p.Species, p.Level)
}

// HealHP adds hp to the saved pokemon. nil fully heals it.
// Saved pokemon don't know their max hp, it gets clamped on Init.
func (p *SavedPokemon) HealHP(amount *core.Health) {
	if amount == nil {
		p.HP = nil
		return
	}

	if p.HP != nil {
		hp := core.Health(min(uint32(*p.HP)+uint32(*amount), uint32(^core.Health(0))))
		p.HP = &hp
	}
}

func (p *SavedPokemon) HealPP(amount *uint8) {
	for i := range p.Moves {
		p.Moves[i].Restore(amount)
	}
}

func (p *SavedPokemon) Heal(hp *core.Health, pp *uint8) {
	p.HealHP(hp)
	p.HealPP(pp)
}

// Init resolves the pokemon against the registry and generates every missing field.
// Returns false if the species no longer exists. Moves and items that no longer exist are dropped.
func (p SavedPokemon) Init(rng *rand.Rand, registry *core.Registry) (*OwnedPokemon, bool) {
	species, ok := registry.Species.TryGet(p.Species)
	if !ok {
		internalLogger.Info("could not find species", "species", p.Species)
		return nil, false
	}

	var gender core.Gender
	if p.Gender != nil {
		gender = *p.Gender
	} else {
		gender = species.GenerateGender(rng)
	}

	var nature core.Nature
	if p.Nature != nil {
		nature = *p.Nature
	} else {
		nature = core.RandomNature(rng)
	}

	moves := InitMoveSet(p.Moves, registry.Moves)
	if moves.IsEmpty() {
		moves = generateMoves(species, p.Level, registry.Moves)
	}

	return p.build(species, gender, nature, moves, registry), true
}

// TryInit resolves the pokemon without generating anything.
// Returns false if the species is missing or gender, nature or hp were never set.
func (p SavedPokemon) TryInit(registry *core.Registry) (*OwnedPokemon, bool) {
	species, ok := registry.Species.TryGet(p.Species)
	if !ok || p.Gender == nil || p.Nature == nil || p.HP == nil {
		return nil, false
	}

	return p.build(species, *p.Gender, *p.Nature, InitMoveSet(p.Moves, registry.Moves), registry), true
}

// build fills in everything shared by Init and TryInit. A missing hp becomes max hp.
func (p SavedPokemon) build(species *core.Species, gender core.Gender, nature core.Nature, moves MoveSet, registry *core.Registry) *OwnedPokemon {
	pokemon := &OwnedPokemon{
		Species:    species,
		Level:      min(max(p.Level, core.MIN_LEVEL), core.MAX_LEVEL),
		Nickname:   p.Nickname,
		Gender:     gender,
		Nature:     nature,
		IVs:        p.IVs,
		EVs:        p.EVs,
		Friendship: p.Friendship,
		Moves:      moves,
		Experience: p.Experience,
	}

	if p.Ailment != nil {
		ailment := core.NewLiveAilment(p.Ailment.Ailment, p.Ailment.Turns)
		pokemon.Ailment = &ailment
	}

	if p.Item != nil {
		if item, ok := registry.Items.TryGet(*p.Item); ok {
			pokemon.Item = item
		} else {
			internalLogger.Info("dropping held item that no longer exists", "item", *p.Item)
		}
	}

	pokemon.HP = pokemon.MaxHP()
	if p.HP != nil {
		pokemon.HP = min(*p.HP, pokemon.HP)
	}

	return pokemon
}

// generateMoves gives a pokemon the last moves it could have learned by its level, newest first
func generateMoves(species *core.Species, level core.Level, movedex *core.Movedex) MoveSet {
	learnable := species.MovesAt(0, level)
	slices.Reverse(learnable)

	set := NewMoveSet()
	for _, id := range learnable {
		if set.IsFull() {
			break
		}
		if set.Contains(id) {
			continue
		}

		if move, ok := movedex.TryGet(id); ok {
			set.Add(nil, move)
		}
	}

	return set
}

// OwnedPokemon is a pokemon resolved against a registry.
// It points into the registry and must not outlive it.
type OwnedPokemon struct {
	Species    *core.Species
	Level      core.Level
	Nickname   string
	Gender     core.Gender
	Nature     core.Nature
	HP         core.Health
	IVs        core.StatSet
	EVs        core.StatSet
	Friendship core.Friendship
	Ailment    *core.LiveAilment
	Moves      MoveSet
	Item       *core.Item
	Experience core.Experience
}

func (p *OwnedPokemon) Uninit() SavedPokemon {
	gender := p.Gender
	nature := p.Nature
	hp := p.HP

	saved := SavedPokemon{
		Species:    p.Species.ID,
		Level:      p.Level,
		Nickname:   p.Nickname,
		Gender:     &gender,
		Nature:     &nature,
		HP:         &hp,
		IVs:        p.IVs,
		EVs:        p.EVs,
		Friendship: p.Friendship,
		Moves:      p.Moves.Uninit(),
		Experience: p.Experience,
	}

	if p.Ailment != nil {
		ailment := core.NewLiveAilment(p.Ailment.Ailment, p.Ailment.Turns)
		saved.Ailment = &ailment
	}

	if p.Item != nil {
		id := p.Item.ID
		saved.Item = &id
	}

	return saved
}

// Name returns the nickname, or the species name when there is none
func (p *OwnedPokemon) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}

	return p.Species.Name
}

func (p *OwnedPokemon) String() string {
	return fmt.Sprintf("Lv. %d %s", p.Level, p.Species.Name)
}

func (p *OwnedPokemon) Stat(stat core.StatType) uint16 {
	return p.Species.Stat(p.IVs, p.EVs, p.Level, p.Nature, stat)
}

func (p *OwnedPokemon) MaxHP() core.Health {
	return p.Stat(core.STAT_HP)
}

func (p *OwnedPokemon) PercentHP() float64 {
	maxHp := p.MaxHP()
	if maxHp == 0 {
		return 0
	}

	return float64(p.HP) / float64(maxHp)
}

func (p *OwnedPokemon) Fainted() bool {
	return p.HP == 0
}

// HealHP heals the pokemon, clamped at max hp. nil fully heals it.
func (p *OwnedPokemon) HealHP(amount *core.Health) {
	maxHp := p.MaxHP()
	if amount == nil {
		p.HP = maxHp
		return
	}

	p.HP = core.Health(min(uint32(p.HP)+uint32(*amount), uint32(maxHp)))
}

func (p *OwnedPokemon) HealPP(amount *uint8) {
	for _, m := range p.Moves.All() {
		m.Restore(amount)
	}
}

func (p *OwnedPokemon) Heal(hp *core.Health, pp *uint8) {
	p.HealHP(hp)
	p.HealPP(pp)
}

// Damage takes hp from the pokemon, stopping at 0
func (p *OwnedPokemon) Damage(amount core.Health) {
	if amount >= p.HP {
		p.HP = 0
		return
	}

	p.HP -= amount
}

// ExpFrom is the experience given for defeating this pokemon
func (p *OwnedPokemon) ExpFrom() core.Experience {
	return p.Species.ExpFrom(p.Level)
}
