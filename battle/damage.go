package battle

import (
	"math"
	"math/rand/v2"

	"github.com/go-logr/logr"
	"github.com/nathanieltooley/klefki/core"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

const (
	MIN_DAMAGE_RANGE = 85
	MAX_DAMAGE_RANGE = 100

	STAB_MULTIPLIER = 1.5
	CRIT_MULTIPLIER = 1.5
)

// CritChance gets the chance of a critical hit for a crit rate tier
func CritChance(rate uint8) float64 {
	switch rate {
	case 0:
		return 1.0 / 16.0
	case 1:
		return 1.0 / 8.0
	case 2:
		return 1.0 / 4.0
	case 3:
		return 1.0 / 3.0
	default:
		return 1.0 / 2.0
	}
}

func RollCrit(rng *rand.Rand, rate uint8) bool {
	return rng.Float64() < CritChance(rate)
}

// RollDamageRange rolls the random damage percentage, 85 to 100 inclusive
func RollDamageRange(rng *rand.Rand) uint8 {
	return uint8(MIN_DAMAGE_RANGE + rng.IntN(MAX_DAMAGE_RANGE-MIN_DAMAGE_RANGE+1))
}

// PowerDamage calculates the damage of a power based attack from user to target.
// Returns false if the target is immune to the move's type.
func PowerDamage(user *Battler, target *Battler, power uint8, category core.MoveCategory, moveType core.PokemonType, crit bool, damageRange uint8) (DamageResult, bool) {
	effectiveness := target.Effectiveness(moveType)
	if effectiveness.IsIneffective() {
		return DamageResult{}, false
	}

	attackStat, defenseStat := category.Stats()
	attack := float64(user.Stat(attackStat))
	defense := float64(max(target.Stat(defenseStat), 1))
	level := float64(user.Pokemon.Level)

	damageInner := math.Floor(math.Floor(math.Floor(2*level/5+2)*attack*float64(power)/defense) / 50)
	damageInner = math.Floor(damageInner*effectiveness.Multiplier() + 2)

	stab := 1.0
	if user.Pokemon.Species.Types.Primary == moveType {
		stab = STAB_MULTIPLIER
	}

	critBoost := 1.0
	if crit {
		critBoost = CRIT_MULTIPLIER
	}

	damage := damageInner * (float64(damageRange) / 100) * stab * critBoost
	finalDamage := clampDamage(damage)

	damageLogger().V(1).Info("final damage",
		"user", user.Pokemon.Name(),
		"target", target.Pokemon.Name(),
		"power", power,
		"level", level,
		"attackValue", attack,
		"attackStage", user.Stages.Get(attackStat),
		"defValue", defense,
		"defenseStage", target.Stages.Get(defenseStat),
		"damageInner", damageInner,
		"damageRange", damageRange,
		"STAB", stab,
		"effectiveness", effectiveness,
		"crit", critBoost,
		"damage", finalDamage)

	return DamageResult{Damage: finalDamage, Effectiveness: effectiveness, Crit: crit}, true
}

// KindDamage calculates damage for the non-power damage kinds.
// These never crit and ignore the damage range.
func KindDamage(target *Battler, kind core.DamageKind, moveType core.PokemonType) (DamageResult, bool) {
	effectiveness := target.Effectiveness(moveType)
	if effectiveness.IsIneffective() {
		return DamageResult{}, false
	}

	var damage core.Health
	switch kind.Kind {
	case core.DAMAGE_PERCENT_CURRENT:
		damage = clampDamage(float64(target.Pokemon.HP) * effectiveness.Multiplier() * float64(kind.Value) / 100)
	case core.DAMAGE_PERCENT_MAX:
		damage = clampDamage(float64(target.Pokemon.MaxHP()) * effectiveness.Multiplier() * float64(kind.Value) / 100)
	case core.DAMAGE_CONSTANT:
		damage = kind.Value
	default:
		damageLogger().Error(nil, "power damage passed to kind damage", "kind", kind.Kind)
		return DamageResult{}, false
	}

	return DamageResult{Damage: damage, Effectiveness: effectiveness}, true
}

// DrainHeal is the amount a drain heals the user for. Negative percents are recoil.
func DrainHeal(damage core.Health, percent int8) int16 {
	heal := math.Round(float64(damage) * float64(percent) / 100)
	return int16(max(math.MinInt16, min(math.MaxInt16, heal)))
}

func clampDamage(damage float64) core.Health {
	if damage <= 0 {
		return 0
	}
	if damage >= math.MaxUint16 {
		return math.MaxUint16
	}

	return core.Health(damage)
}
