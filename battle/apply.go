package battle

import "github.com/nathanieltooley/klefki/core"

// Apply carries out the results of a move used by user on target.
// Results marked OnUser affect the user instead.
func Apply(user *Battler, target *Battler, results []MoveResult) {
	for _, result := range results {
		affected := target
		if result.OnUser {
			affected = user
		}

		switch result.Kind {
		case RESULT_DAMAGE:
			affected.Pokemon.Damage(result.Damage.Damage)
		case RESULT_DRAIN:
			affected.Pokemon.Damage(result.Damage.Damage)

			if result.Heal >= 0 {
				heal := core.Health(result.Heal)
				user.Pokemon.HealHP(&heal)
			} else {
				user.Pokemon.Damage(core.Health(-int(result.Heal)))
			}
		case RESULT_STATUS:
			if affected.Pokemon.Ailment == nil {
				ailment := core.NewLiveAilment(result.Ailment.Ailment, result.Ailment.Turns)
				affected.Pokemon.Ailment = &ailment
			}
		case RESULT_STAT_STAGE:
			affected.Stages.Change(result.Stat, result.Stage)
		case RESULT_FLINCH:
			affected.Flinched = true
		}

		internalLogger.V(1).Info("applied move result", "pokemon", affected.Pokemon.Name(), "result", result.String())
	}
}
