package battle

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/go-logr/logr"
	"github.com/nathanieltooley/klefki/core"
)

var moveUsageLogger = func() logr.Logger {
	return internalLogger.WithName("move_usage")
}

var (
	ErrNoSuchMove = errors.New("no move in that slot")
	ErrNoPP       = errors.New("move has no pp left")
)

// moveUse holds everything shared by a single use of a move.
// The crit and damage range rolls are made the first time a damage calculation needs them.
type moveUse struct {
	rng    *rand.Rand
	engine MoveEngine
	move   *core.Move
	user   *Battler

	crit        *bool
	damageRange *uint8
}

func newMoveUse(rng *rand.Rand, engine MoveEngine, move *core.Move, user *Battler) *moveUse {
	if engine == nil {
		engine = NoEngine{}
	}

	return &moveUse{rng: rng, engine: engine, move: move, user: user}
}

func (u *moveUse) rollCrit() bool {
	if u.crit == nil {
		crit := RollCrit(u.rng, u.move.CritRate)
		u.crit = &crit
	}

	return *u.crit
}

func (u *moveUse) rollDamageRange() uint8 {
	if u.damageRange == nil {
		damageRange := RollDamageRange(u.rng)
		u.damageRange = &damageRange
	}

	return *u.damageRange
}

// UseMove uses the move in the given slot on every target, taking one PP.
// Targets are resolved in key order so the same seed always gives the same results.
func (b *Battler) UseMove(rng *rand.Rand, engine MoveEngine, moveIndex int, targets map[TargetID]*Battler) (*core.Move, map[TargetID][]MoveResult, error) {
	ownedMove, ok := b.Pokemon.Moves.Get(moveIndex)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d", ErrNoSuchMove, moveIndex)
	}
	if !ownedMove.TryUse() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoPP, ownedMove.Move.ID)
	}

	used := ownedMove.Move
	moveUsageLogger().Info("using move", "pokemon", b.Pokemon.Name(), "move", used.ID, "targets", len(targets))

	use := newMoveUse(rng, engine, used, b)
	results := make(map[TargetID][]MoveResult, len(targets))
	for _, id := range slices.Sorted(maps.Keys(targets)) {
		results[id] = use.onTarget(targets[id])
	}

	return used, results, nil
}

// UseMoveOnTarget resolves a move against a single target without taking PP
func (b *Battler) UseMoveOnTarget(rng *rand.Rand, engine MoveEngine, move *core.Move, target *Battler) []MoveResult {
	return newMoveUse(rng, engine, move, b).onTarget(target)
}

func (u *moveUse) onTarget(target *Battler) []MoveResult {
	if u.move.Accuracy != nil {
		roll := u.rng.IntN(100)
		if roll >= int(*u.move.Accuracy) {
			moveUsageLogger().V(1).Info("move missed", "move", u.move.ID, "roll", roll, "accuracy", *u.move.Accuracy)
			return []MoveResult{NoHit(NOHIT_MISS)}
		}
	}

	results := make([]MoveResult, 0, u.move.Usages())
	return u.usage(results, u.move.Usage, target, false)
}

func (u *moveUse) usage(results []MoveResult, usages []core.MoveUsage, target *Battler, onUser bool) []MoveResult {
	push := func(result MoveResult) {
		result.OnUser = onUser
		results = append(results, result)
	}

	for _, usage := range usages {
		switch usage.Kind {
		case core.USAGE_DAMAGE:
			if damage, ok := u.damage(usage.Damage, target); ok {
				push(DamageHit(damage))
			} else {
				push(NoHit(NOHIT_INEFFECTIVE))
			}
		case core.USAGE_AILMENT:
			if target.Pokemon.Ailment != nil || !core.RollPercent(u.rng, int(usage.Percent)) {
				continue
			}

			length := core.PermanentLength()
			if usage.Length != nil {
				length = *usage.Length
			}
			push(StatusResult(length.Init(usage.Ailment, u.rng)))
		case core.USAGE_DRAIN:
			if damage, ok := u.damage(usage.Damage, target); ok {
				push(DrainResult(damage, DrainHeal(damage.Damage, usage.Percent)))
			} else {
				push(NoHit(NOHIT_INEFFECTIVE))
			}
		case core.USAGE_STAT_STAGE:
			if target.Stages.CanChange(usage.Stat, usage.Stage) {
				push(StatStageResult(usage.Stat, usage.Stage))
			}
		case core.USAGE_FLINCH:
			push(FlinchResult())
		case core.USAGE_CHANCE:
			if core.RollPercent(u.rng, int(usage.Percent)) {
				results = u.usage(results, usage.Children, target, onUser)
			}
		case core.USAGE_USER:
			results = u.usage(results, usage.Children, u.user, true)
		case core.USAGE_SCRIPT:
			scriptResults, err := u.engine.Execute(usage.Script, u.rng, u.move, u.user, target)
			if err != nil {
				moveUsageLogger().Error(err, "could not execute move script", "move", u.move.Name, "script", usage.Script)
				push(NoHit(NOHIT_ERROR))
				continue
			}
			for _, result := range scriptResults {
				push(result)
			}
		default:
			push(NoHit(NOHIT_TODO))
		}
	}

	return results
}

func (u *moveUse) damage(kind *core.DamageKind, target *Battler) (DamageResult, bool) {
	if kind == nil {
		return DamageResult{}, false
	}

	if kind.Kind == core.DAMAGE_POWER {
		power := uint8(min(kind.Value, 255))
		return PowerDamage(u.user, target, power, u.move.Category, u.move.Type, u.rollCrit(), u.rollDamageRange())
	}

	return KindDamage(target, *kind, u.move.Type)
}
