package battle

import (
	"github.com/go-logr/logr"
	"github.com/nathanieltooley/klefki/core"
	"github.com/nathanieltooley/klefki/owned"
)

var aiLogger = func() logr.Logger {
	return internalLogger.WithName("ai_move_selection")
}

// BestMove picks a move slot for user to use against target, or -1 if no move has pp left.
// A slower user goes for a move that slows or paralyzes the target if it has one,
// otherwise the move with the highest damage, assuming no crit and the top of the damage range.
// Falls back to the first usable move.
func BestMove(user *Battler, target *Battler) int {
	fallback := -1
	bestDamage, bestIndex := core.Health(0), -1
	slowingIndex := -1
	slower := user.Stat(core.STAT_SPEED) < target.Stat(core.STAT_SPEED)

	for i, move := range user.Pokemon.Moves.All() {
		if move.PP == 0 {
			continue
		}
		if fallback == -1 {
			fallback = i
		}

		if slowingIndex == -1 && canSlow(move.Move.Usage, target) {
			slowingIndex = i
		}

		if damage := expectedDamage(user, target, move); damage > bestDamage {
			bestDamage, bestIndex = damage, i
		}
	}

	switch {
	case slower && slowingIndex != -1:
		aiLogger().V(1).Info("picked slowing move", "pokemon", user.Pokemon.Name(), "index", slowingIndex)
		return slowingIndex
	case bestIndex != -1:
		aiLogger().V(1).Info("picked attacking move", "pokemon", user.Pokemon.Name(), "index", bestIndex, "damage", bestDamage)
		return bestIndex
	default:
		return fallback
	}
}

func canSlow(usages []core.MoveUsage, target *Battler) bool {
	for _, usage := range usages {
		switch usage.Kind {
		case core.USAGE_STAT_STAGE:
			if usage.Stat == core.STAT_SPEED && usage.Stage < 0 && target.Stages.CanChange(usage.Stat, usage.Stage) {
				return true
			}
		case core.USAGE_AILMENT:
			if usage.Ailment == core.AILMENT_PARALYSIS && target.Pokemon.Ailment == nil {
				return true
			}
		case core.USAGE_CHANCE:
			if canSlow(usage.Children, target) {
				return true
			}
		}
	}

	return false
}

func expectedDamage(user *Battler, target *Battler, move *owned.OwnedMove) core.Health {
	var total core.Health
	for _, usage := range move.Move.Usage {
		if usage.Kind != core.USAGE_DAMAGE && usage.Kind != core.USAGE_DRAIN || usage.Damage == nil {
			continue
		}

		var result DamageResult
		var ok bool
		if usage.Damage.Kind == core.DAMAGE_POWER {
			power := uint8(min(usage.Damage.Value, 255))
			result, ok = PowerDamage(user, target, power, move.Move.Category, move.Move.Type, false, MAX_DAMAGE_RANGE)
		} else {
			result, ok = KindDamage(target, *usage.Damage, move.Move.Type)
		}

		if ok {
			total += result.Damage
		}
	}

	return total
}
