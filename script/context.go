package script

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/nathanieltooley/klefki/battle"
	"github.com/nathanieltooley/klefki/core"
)

type scriptContext struct {
	rng    *rand.Rand
	move   *core.Move
	user   *battle.Battler
	target *battle.Battler
}

func (c *scriptContext) register(state *lua.State) {
	pushBattler(state, c.user)
	state.SetGlobal("user")
	pushBattler(state, c.target)
	state.SetGlobal("target")
	pushMove(state, c.move)
	state.SetGlobal("move")

	for _, helper := range []lua.RegistryFunction{
		{Name: "random", Function: c.random},
		{Name: "crit", Function: c.crit},
		{Name: "damage_range", Function: c.damageRange},
		{Name: "damage", Function: c.damage},
		{Name: "effective", Function: c.effective},
	} {
		state.PushGoFunction(helper.Function)
		state.SetGlobal(helper.Name)
	}
}

func (c *scriptContext) random(state *lua.State) int {
	low := lua.CheckInteger(state, 1)
	high := lua.CheckInteger(state, 2)
	if high < low {
		lua.Errorf(state, "random: max %d is less than min %d", high, low)
		return 0
	}

	state.PushInteger(low + c.rng.IntN(high-low+1))
	return 1
}

func (c *scriptContext) crit(state *lua.State) int {
	rate := lua.OptInteger(state, 1, int(c.move.CritRate))
	state.PushBoolean(battle.RollCrit(c.rng, uint8(max(0, min(rate, 255)))))
	return 1
}

func (c *scriptContext) damageRange(state *lua.State) int {
	state.PushInteger(int(battle.RollDamageRange(c.rng)))
	return 1
}

func (c *scriptContext) damage(state *lua.State) int {
	power := lua.CheckInteger(state, 1)
	if power < 0 || power > 255 {
		lua.ArgumentError(state, 1, "power must be between 0 and 255")
		return 0
	}

	var crit bool
	if state.IsNoneOrNil(2) {
		crit = battle.RollCrit(c.rng, c.move.CritRate)
	} else {
		crit = state.ToBoolean(2)
	}

	result, ok := battle.PowerDamage(c.user, c.target, uint8(power), c.move.Category, c.move.Type, crit, battle.RollDamageRange(c.rng))
	state.NewTable()
	if !ok {
		setString(state, "kind", "ineffective")
		return 1
	}

	setString(state, "kind", "damage")
	setInteger(state, "damage", int(result.Damage))
	setNumber(state, "effective", result.Effectiveness.Multiplier())
	setBoolean(state, "crit", result.Crit)
	return 1
}

func (c *scriptContext) effective(state *lua.State) int {
	state.PushNumber(c.target.Effectiveness(c.move.Type).Multiplier())
	return 1
}

func pushBattler(state *lua.State, battler *battle.Battler) {
	pokemon := battler.Pokemon

	state.NewTable()
	setString(state, "name", pokemon.Name())
	setInteger(state, "species", int(pokemon.Species.ID))
	setInteger(state, "level", int(pokemon.Level))
	setInteger(state, "hp", int(pokemon.HP))
	setInteger(state, "max_hp", int(pokemon.MaxHP()))
	for _, stat := range []core.StatType{core.STAT_ATTACK, core.STAT_DEFENSE, core.STAT_SPATTACK, core.STAT_SPDEFENSE, core.STAT_SPEED} {
		setInteger(state, luaName(stat.String()), int(battler.Stat(stat)))
	}

	state.NewTable()
	state.PushString(pokemon.Species.Types.Primary.String())
	state.RawSetInt(-2, 1)
	if secondary := pokemon.Species.Types.Secondary; secondary != nil {
		state.PushString(secondary.String())
		state.RawSetInt(-2, 2)
	}
	state.SetField(-2, "types")

	if pokemon.Ailment != nil {
		setString(state, "ailment", pokemon.Ailment.Ailment.String())
	}
}

func pushMove(state *lua.State, move *core.Move) {
	state.NewTable()
	setString(state, "id", string(move.ID))
	setString(state, "name", move.Name)
	setString(state, "category", move.Category.String())
	setString(state, "type", move.Type.String())
	setInteger(state, "crit_rate", int(move.CritRate))
	if move.Power != nil {
		setInteger(state, "power", int(*move.Power))
	}
	if move.Accuracy != nil {
		setInteger(state, "accuracy", int(*move.Accuracy))
	}
}

// luaName turns names like special-attack into special_attack
func luaName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func setString(state *lua.State, key, value string) {
	state.PushString(value)
	state.SetField(-2, key)
}

func setInteger(state *lua.State, key string, value int) {
	state.PushInteger(value)
	state.SetField(-2, key)
}

func setNumber(state *lua.State, key string, value float64) {
	state.PushNumber(value)
	state.SetField(-2, key)
}

func setBoolean(state *lua.State, key string, value bool) {
	state.PushBoolean(value)
	state.SetField(-2, key)
}

func stringField(state *lua.State, index int, key string) (string, bool) {
	state.Field(index, key)
	defer state.Pop(1)

	if state.TypeOf(-1) != lua.TypeString {
		return "", false
	}
	return state.ToString(-1)
}

func intField(state *lua.State, index int, key string) (int, bool) {
	state.Field(index, key)
	defer state.Pop(1)

	if state.TypeOf(-1) != lua.TypeNumber {
		return 0, false
	}
	return state.ToInteger(-1)
}

func numberField(state *lua.State, index int, key string) (float64, bool) {
	state.Field(index, key)
	defer state.Pop(1)

	if state.TypeOf(-1) != lua.TypeNumber {
		return 0, false
	}
	return state.ToNumber(-1)
}

func boolField(state *lua.State, index int, key string) bool {
	state.Field(index, key)
	defer state.Pop(1)

	return state.ToBoolean(-1)
}

func fieldError(kind string, field string) error {
	return fmt.Errorf("%s result is missing %s", kind, field)
}
