package owned

import (
	"github.com/nathanieltooley/klefki/core"
)

// CanUseItem checks every usage condition of the item against the pokemon
func (p *OwnedPokemon) CanUseItem(item *core.Item) bool {
	for _, condition := range item.Usage.Conditions {
		switch condition {
		case core.CONDITION_FAINTED:
			if !p.Fainted() {
				return false
			}
		default:
			return false
		}
	}

	return item.Usage.Kind == core.ITEM_USAGE_ACTIONS
}

// UseItem applies the item's actions to the pokemon in order.
// Returns false and changes nothing if any condition fails or the item can't be used on a pokemon.
func (p *OwnedPokemon) UseItem(item *core.Item) bool {
	if !p.CanUseItem(item) {
		internalLogger.V(1).Info("item can not be used", "item", item.ID, "pokemon", p.Name(), "kind", item.Usage.Kind)
		return false
	}

	for _, action := range item.Usage.Actions {
		switch action.Kind {
		case core.ACTION_CURE:
			if p.Ailment == nil {
				continue
			}
			if action.Ailment == nil || *action.Ailment == p.Ailment.Ailment {
				p.Ailment = nil
			}
		case core.ACTION_HEAL:
			amount := action.Amount
			p.HealHP(&amount)
		}
	}

	internalLogger.Info("used item", "item", item.ID, "pokemon", p.Name())
	return true
}
