package script

import (
	"fmt"

	"github.com/Shopify/go-lua"
	"github.com/nathanieltooley/klefki/battle"
	"github.com/nathanieltooley/klefki/core"
)

// readResults converts the array of result tables at index into move results
func readResults(state *lua.State, index int) ([]battle.MoveResult, error) {
	index = state.AbsIndex(index)
	length := state.RawLength(index)

	results := make([]battle.MoveResult, 0, length)
	for i := 1; i <= length; i++ {
		state.RawGetInt(index, i)
		if state.TypeOf(-1) != lua.TypeTable {
			state.Pop(1)
			return nil, fmt.Errorf("result %d is not a table", i)
		}

		result, err := readResult(state, state.AbsIndex(-1))
		state.Pop(1)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}

		results = append(results, result)
	}

	return results, nil
}

func readResult(state *lua.State, index int) (battle.MoveResult, error) {
	kind, ok := stringField(state, index, "kind")
	if !ok {
		return battle.MoveResult{}, fieldError("script", "kind")
	}

	var result battle.MoveResult
	switch kind {
	case "damage":
		damage, err := readDamage(state, index, kind)
		if err != nil {
			return result, err
		}
		if damage.Effectiveness.IsIneffective() {
			result = battle.NoHit(battle.NOHIT_INEFFECTIVE)
			break
		}
		result = battle.DamageHit(damage)
	case "drain":
		damage, err := readDamage(state, index, kind)
		if err != nil {
			return result, err
		}
		heal, ok := intField(state, index, "heal")
		if !ok {
			return result, fieldError(kind, "heal")
		}
		if damage.Effectiveness.IsIneffective() {
			result = battle.NoHit(battle.NOHIT_INEFFECTIVE)
			break
		}
		result = battle.DrainResult(damage, int16(max(-32768, min(heal, 32767))))
	case "status":
		name, ok := stringField(state, index, "ailment")
		if !ok {
			return result, fieldError(kind, "ailment")
		}
		var ailment core.Ailment
		if err := ailment.UnmarshalText([]byte(name)); err != nil {
			return result, err
		}

		var turns *uint8
		if t, ok := intField(state, index, "turns"); ok {
			count := uint8(max(0, min(t, 255)))
			turns = &count
		}
		result = battle.StatusResult(core.NewLiveAilment(ailment, turns))
	case "stat_stage":
		name, ok := stringField(state, index, "stat")
		if !ok {
			return result, fieldError(kind, "stat")
		}
		var stat core.StatType
		if err := stat.UnmarshalText([]byte(name)); err != nil {
			return result, err
		}
		stage, ok := intField(state, index, "stage")
		if !ok {
			return result, fieldError(kind, "stage")
		}
		result = battle.StatStageResult(stat, int8(max(-12, min(stage, 12))))
	case "flinch":
		result = battle.FlinchResult()
	case "miss":
		result = battle.NoHit(battle.NOHIT_MISS)
	case "ineffective":
		result = battle.NoHit(battle.NOHIT_INEFFECTIVE)
	default:
		return result, fmt.Errorf("unknown result kind %q", kind)
	}

	result.OnUser = boolField(state, index, "user")
	return result, nil
}

func readDamage(state *lua.State, index int, kind string) (battle.DamageResult, error) {
	damage, ok := intField(state, index, "damage")
	if !ok {
		return battle.DamageResult{}, fieldError(kind, "damage")
	}

	effective := core.EFFECTIVE
	if e, ok := numberField(state, index, "effective"); ok {
		effective = core.Effectiveness(e)
	}

	return battle.DamageResult{
		Damage:        core.Health(max(0, min(damage, 65535))),
		Effectiveness: effective,
		Crit:          boolField(state, index, "crit"),
	}, nil
}
