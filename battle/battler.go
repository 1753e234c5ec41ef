// Package battle resolves a pokemon using a move against one or more targets.
//
// Resolution never mutates the pokemon involved. It produces a list of MoveResult values per target
// which the caller can inspect, send over the wire, or hand to Apply.
package battle

import (
	"fmt"

	"github.com/nathanieltooley/klefki/core"
	"github.com/nathanieltooley/klefki/owned"
)

type TargetID string

const (
	TARGET_USER     TargetID = "user"
	TARGET_OPPONENT TargetID = "opponent"
)

// Battler is a pokemon in battle along with the state that only lives as long as the battle
type Battler struct {
	Pokemon  *owned.OwnedPokemon
	Stages   core.StatStages
	Flinched bool
}

func NewBattler(pokemon *owned.OwnedPokemon) *Battler {
	return &Battler{Pokemon: pokemon}
}

func (b *Battler) String() string {
	return fmt.Sprintf("%s (%d/%d)", b.Pokemon.Name(), b.Pokemon.HP, b.Pokemon.MaxHP())
}

// Stat gets the effective value of a stat with stat stages applied
func (b *Battler) Stat(stat core.StatType) uint16 {
	return b.Stages.Apply(stat, b.Pokemon.Stat(stat))
}

// Effectiveness gets how effective an attack of the given type is against this battler
func (b *Battler) Effectiveness(moveType core.PokemonType) core.Effectiveness {
	return b.Pokemon.Species.DefenseEffectiveness(moveType)
}

// EndTurn clears per-turn state and counts down temporary ailments
func (b *Battler) EndTurn() {
	b.Flinched = false

	if b.Pokemon.Ailment != nil && b.Pokemon.Ailment.Decrement() {
		internalLogger.V(1).Info("ailment wore off", "pokemon", b.Pokemon.Name(), "ailment", b.Pokemon.Ailment.Ailment)
		b.Pokemon.Ailment = nil
	}
}

// SwitchOut resets everything that doesn't persist once the pokemon leaves the field
func (b *Battler) SwitchOut() {
	b.Stages.Reset()
	b.Flinched = false
}
