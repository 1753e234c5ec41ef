package owned

import (
	"math"

	"github.com/go-logr/logr"
	"github.com/nathanieltooley/klefki/core"
)

const EXP_MULTIPLIER = 5

var expLogger = func() logr.Logger {
	return internalLogger.WithName("exp")
}

// AddExp gives the pokemon experience and levels it up as many times as the experience allows.
// Moves learned on the way fill empty move slots; the ones that did not fit are returned
// so the caller can offer to replace an existing move.
func (p *OwnedPokemon) AddExp(movedex *core.Movedex, amount core.Experience) []core.MoveID {
	p.Experience = core.Experience(min(uint64(p.Experience)+uint64(amount)*EXP_MULTIPLIER, math.MaxUint32))

	growth := p.Species.Training.Growth
	previous := p.Level

	for p.Level < core.MAX_LEVEL && p.Experience >= growth.MaxExp(p.Level) {
		p.Experience -= growth.MaxExp(p.Level)
		p.Level++
	}

	if p.Level != previous {
		expLogger().Info("pokemon leveled up", "pokemon", p.Name(), "from", previous, "to", p.Level, "experience", p.Experience)
	}

	return p.onLevelUp(movedex, previous)
}

func (p *OwnedPokemon) onLevelUp(movedex *core.Movedex, previous core.Level) []core.MoveID {
	learnable := p.Species.MovesAt(previous, p.Level)
	leftover := make([]core.MoveID, 0)

	for _, id := range learnable {
		if p.Moves.Contains(id) {
			continue
		}

		move, ok := movedex.TryGet(id)
		if !ok {
			expLogger().V(1).Info("skipping learnable move that doesn't exist", "move", id)
			continue
		}

		if !p.Moves.Add(nil, move) {
			leftover = append(leftover, id)
		}
	}

	return leftover
}

// ExpToNextLevel is how much more experience the pokemon needs before it levels up
func (p *OwnedPokemon) ExpToNextLevel() core.Experience {
	if p.Level >= core.MAX_LEVEL {
		return 0
	}

	needed := p.Species.Training.Growth.MaxExp(p.Level)
	if p.Experience >= needed {
		return 0
	}

	return needed - p.Experience
}
