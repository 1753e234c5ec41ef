package battle

import (
	"cmp"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/go-logr/logr"
	"github.com/nathanieltooley/klefki/core"
)

var turnLogger = func() logr.Logger {
	return internalLogger.WithName("turn")
}

// Chance out of 100 that a paralyzed pokemon can't move
const PARALYSIS_SKIP_CHANCE = 25

// Action is a battler choosing a move slot to use against an opponent.
// A negative MoveIndex passes the turn.
type Action struct {
	User      *Battler
	Opponent  *Battler
	MoveIndex int
}

type SkipReason uint8

const (
	SKIP_NONE SkipReason = iota
	SKIP_PASSED
	SKIP_FAINTED
	SKIP_FLINCHED
	SKIP_SLEEP
	SKIP_FREEZE
	SKIP_PARALYSIS
	SKIP_INVALID
)

var skipReasonNames = [...]string{"none", "passed", "fainted", "flinched", "asleep", "frozen", "paralyzed", "invalid"}

func (r SkipReason) String() string {
	if int(r) < len(skipReasonNames) {
		return skipReasonNames[r]
	}
	return "unknown"
}

// TurnEvent is what happened when one action was carried out
type TurnEvent struct {
	User    *Battler
	Move    *core.Move
	Targets map[TargetID]*Battler
	Results map[TargetID][]MoveResult
	Skipped SkipReason
	Err     error
}

// priority of the chosen move, passes and invalid slots count as 0
func (a Action) priority() int8 {
	if move, ok := a.User.Pokemon.Moves.Get(a.MoveIndex); ok {
		return move.Move.Priority
	}
	return 0
}

// SingleBattleTargets picks the targets of a move in a one on one battle
func SingleBattleTargets(move *core.Move, user *Battler, opponent *Battler) map[TargetID]*Battler {
	switch move.Target {
	case core.TARGET_USER, core.TARGET_USER_OR_ALLY, core.TARGET_USER_AND_ALLIES, core.TARGET_ALLY, core.TARGET_ALLIES:
		return map[TargetID]*Battler{TARGET_USER: user}
	case core.TARGET_ALL_POKEMON:
		return map[TargetID]*Battler{TARGET_USER: user, TARGET_OPPONENT: opponent}
	default:
		return map[TargetID]*Battler{TARGET_OPPONENT: opponent}
	}
}

// ProcessTurn carries out every action, highest move priority first and then fastest battler first,
// and applies the results as it goes. Speed ties are broken by the rng. Every battler that acted gets EndTurn called once all actions are done.
func ProcessTurn(rng *rand.Rand, engine MoveEngine, actions []Action) []TurnEvent {
	ordered := slices.Clone(actions)
	rng.Shuffle(len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	slices.SortStableFunc(ordered, func(a, b Action) int {
		if byPriority := cmp.Compare(b.priority(), a.priority()); byPriority != 0 {
			return byPriority
		}
		return cmp.Compare(b.User.Stat(core.STAT_SPEED), a.User.Stat(core.STAT_SPEED))
	})

	events := make([]TurnEvent, 0, len(ordered))
	for _, action := range ordered {
		event := takeAction(rng, engine, action)
		turnLogger().V(1).Info("turn event", "pokemon", action.User.Pokemon.Name(), "skipped", event.Skipped.String())
		events = append(events, event)
	}

	for _, action := range ordered {
		action.User.EndTurn()
	}

	return events
}

func takeAction(rng *rand.Rand, engine MoveEngine, action Action) TurnEvent {
	user := action.User
	event := TurnEvent{User: user}

	if skip := skipReason(rng, action); skip != SKIP_NONE {
		event.Skipped = skip
		return event
	}

	ownedMove, ok := user.Pokemon.Moves.Get(action.MoveIndex)
	if !ok {
		event.Skipped = SKIP_INVALID
		event.Err = ErrNoSuchMove
		return event
	}

	targets := SingleBattleTargets(ownedMove.Move, user, action.Opponent)
	move, results, err := user.UseMove(rng, engine, action.MoveIndex, targets)
	if err != nil {
		event.Skipped = SKIP_INVALID
		event.Err = err
		return event
	}

	event.Move = move
	event.Targets = targets
	event.Results = results
	for _, id := range slices.Sorted(maps.Keys(targets)) {
		Apply(user, targets[id], results[id])
	}

	return event
}

func skipReason(rng *rand.Rand, action Action) SkipReason {
	pokemon := action.User.Pokemon

	switch {
	case action.MoveIndex < 0:
		return SKIP_PASSED
	case pokemon.Fainted():
		return SKIP_FAINTED
	case action.User.Flinched:
		return SKIP_FLINCHED
	case pokemon.Ailment == nil:
		return SKIP_NONE
	}

	switch pokemon.Ailment.Ailment {
	case core.AILMENT_SLEEP:
		return SKIP_SLEEP
	case core.AILMENT_FREEZE:
		return SKIP_FREEZE
	case core.AILMENT_PARALYSIS:
		if core.RollPercent(rng, PARALYSIS_SKIP_CHANCE) {
			return SKIP_PARALYSIS
		}
	}

	return SKIP_NONE
}
