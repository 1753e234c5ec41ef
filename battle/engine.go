package battle

import (
	"errors"
	"math/rand/v2"

	"github.com/nathanieltooley/klefki/core"
)

var ErrNoEngine = errors.New("no move engine to run scripts with")

// MoveEngine runs the scripted parts of moves
type MoveEngine interface {
	Execute(script string, rng *rand.Rand, used *core.Move, user *Battler, target *Battler) ([]MoveResult, error)
}

// NoEngine fails every script
type NoEngine struct{}

func (NoEngine) Execute(script string, _ *rand.Rand, _ *core.Move, _ *Battler, _ *Battler) ([]MoveResult, error) {
	return nil, ErrNoEngine
}
