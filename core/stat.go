package core

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	MAX_IV       = 31
	MAX_EV       = 252
	MAX_TOTAL_EV = 510

	DEFAULT_IV = 15

	MIN_STAGE = -6
	MAX_STAGE = 6
)

type StatType uint8

const (
	STAT_HP StatType = iota
	STAT_ATTACK
	STAT_DEFENSE
	STAT_SPATTACK
	STAT_SPDEFENSE
	STAT_SPEED
)

var statNames = [...]string{
	STAT_HP:        "hp",
	STAT_ATTACK:    "attack",
	STAT_DEFENSE:   "defense",
	STAT_SPATTACK:  "special-attack",
	STAT_SPDEFENSE: "special-defense",
	STAT_SPEED:     "speed",
}

func (s StatType) String() string {
	if int(s) < len(statNames) {
		return statNames[s]
	}

	return fmt.Sprintf("StatType(%d)", s)
}

func (s StatType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *StatType) UnmarshalText(text []byte) error {
	for i, name := range statNames {
		if name == string(text) {
			*s = StatType(i)
			return nil
		}
	}

	return fmt.Errorf("unknown stat: %q", text)
}

// StatSet holds one value per StatType. Used for base stats, IVs and EVs.
type StatSet struct {
	HP        uint8 `json:"hp"`
	Attack    uint8 `json:"atk"`
	Defense   uint8 `json:"def"`
	SpAttack  uint8 `json:"sp_atk"`
	SpDefense uint8 `json:"sp_def"`
	Speed     uint8 `json:"speed"`
}

func UniformStats(value uint8) StatSet {
	return StatSet{value, value, value, value, value, value}
}

// DefaultIVs is the IV spread given to saved pokemon that don't specify one
func DefaultIVs() StatSet {
	return UniformStats(DEFAULT_IV)
}

func (s StatSet) Get(stat StatType) uint8 {
	switch stat {
	case STAT_HP:
		return s.HP
	case STAT_ATTACK:
		return s.Attack
	case STAT_DEFENSE:
		return s.Defense
	case STAT_SPATTACK:
		return s.SpAttack
	case STAT_SPDEFENSE:
		return s.SpDefense
	case STAT_SPEED:
		return s.Speed
	}

	return 0
}

func (s *StatSet) Set(stat StatType, value uint8) {
	switch stat {
	case STAT_HP:
		s.HP = value
	case STAT_ATTACK:
		s.Attack = value
	case STAT_DEFENSE:
		s.Defense = value
	case STAT_SPATTACK:
		s.SpAttack = value
	case STAT_SPDEFENSE:
		s.SpDefense = value
	case STAT_SPEED:
		s.Speed = value
	}
}

func (s StatSet) Total() int {
	return int(s.HP) + int(s.Attack) + int(s.Defense) + int(s.SpAttack) + int(s.SpDefense) + int(s.Speed)
}

// IncrementEV adds to an EV, keeping the single EV and total EV caps.
// Returns how much was actually added.
func (s *StatSet) IncrementEV(stat StatType, by uint8) uint8 {
	current := s.Get(stat)
	room := min(MAX_EV-int(current), MAX_TOTAL_EV-s.Total())
	if room <= 0 {
		return 0
	}

	added := min(int(by), room)
	s.Set(stat, current+uint8(added))

	return uint8(added)
}

// RandomIVs generates an IV spread with every stat in [0, MAX_IV]
func RandomIVs(rng *rand.Rand) StatSet {
	var ivs StatSet
	for stat := STAT_HP; stat <= STAT_SPEED; stat++ {
		ivs.Set(stat, uint8(rng.UintN(MAX_IV+1)))
	}

	return ivs
}

func CreateEVSpread(hp, attack, def, spAttack, spDef, speed uint) (StatSet, error) {
	values := [6]uint{hp, attack, def, spAttack, spDef, speed}
	var evs StatSet

	var total uint
	for i, value := range values {
		if value > MAX_EV {
			return evs, fmt.Errorf("%s is too high: %d", StatType(i), value)
		}
		total += value
		evs.Set(StatType(i), uint8(value))
	}

	if total > MAX_TOTAL_EV {
		return StatSet{}, fmt.Errorf("stat total (%d) is greater than the max allowed: %d", total, MAX_TOTAL_EV)
	}

	return evs, nil
}

func CreateIVSpread(hp, attack, def, spAttack, spDef, speed uint) (StatSet, error) {
	values := [6]uint{hp, attack, def, spAttack, spDef, speed}
	var ivs StatSet

	for i, value := range values {
		if value > MAX_IV {
			return StatSet{}, errors.New(StatType(i).String() + " is too high")
		}
		ivs.Set(StatType(i), uint8(value))
	}

	return ivs, nil
}

// Stat calculates the real value of a stat from its base value, IV, EV, the pokemon's level and its nature.
//
// Non-HP: floor(((2*base + iv + ev/4) * level / 100 + 5) * nature)
// HP: floor((2*base + iv + ev/4) * level / 100 + level + 10)
//
// The inner expression stays real valued and is floored once at the end; flooring earlier
// gives 135 instead of 136 for the canonical (105, 15, 50, 50, Adamant) attack check.
func Stat(base, iv, ev, level uint8, nature Nature, stat StatType) uint16 {
	if stat == STAT_HP {
		return CalcHp(base, iv, ev, level)
	}

	return CalcStat(base, iv, ev, level, float64(nature.Multiplier(stat)))
}

func CalcStat(base, iv, ev, level uint8, natureMod float64) uint16 {
	value := partialStat(base, iv, ev, level)
	value += 5
	value *= natureMod

	return clampHealth(value)
}

func CalcHp(base, iv, ev, level uint8) uint16 {
	value := partialStat(base, iv, ev, level)
	value += float64(level)
	value += 10

	return clampHealth(value)
}

func partialStat(base, iv, ev, level uint8) float64 {
	value := 2*float64(base) + float64(iv)
	value += float64(ev) / 4
	value *= float64(level)
	value /= 100

	return value
}

func clampHealth(value float64) uint16 {
	value = math.Floor(value)
	if value <= 0 {
		return 0
	}
	if value >= math.MaxUint16 {
		return math.MaxUint16
	}

	return uint16(value)
}

// ========== Stages ==========

// StageMultipliers maps a stat stage to the multiplier it applies to the effective stat
var StageMultipliers = map[int8]float64{
	-6: 2.0 / 8.0,
	-5: 2.0 / 7.0,
	-4: 2.0 / 6.0,
	-3: 2.0 / 5.0,
	-2: 2.0 / 4.0,
	-1: 2.0 / 3.0,
	0:  1,
	1:  3.0 / 2.0,
	2:  4.0 / 2.0,
	3:  5.0 / 2.0,
	4:  6.0 / 2.0,
	5:  7.0 / 2.0,
	6:  8.0 / 2.0,
}

// StatStages are the in-battle stage changes of every stat but HP.
type StatStages [STAT_SPEED + 1]int8

func (s StatStages) Get(stat StatType) int8 {
	if stat == STAT_HP || int(stat) >= len(s) {
		return 0
	}

	return s[stat]
}

// CanChange reports whether applying delta keeps the stage inside [MIN_STAGE, MAX_STAGE]
func (s StatStages) CanChange(stat StatType, delta int8) bool {
	if stat == STAT_HP || int(stat) >= len(s) {
		return false
	}

	next := int(s[stat]) + int(delta)
	return next >= MIN_STAGE && next <= MAX_STAGE
}

// Change applies a stage change, clamping at the stage limits
func (s *StatStages) Change(stat StatType, delta int8) {
	if stat == STAT_HP || int(stat) >= len(s) {
		return
	}

	s[stat] = int8(min(MAX_STAGE, max(MIN_STAGE, int(s[stat])+int(delta))))
}

func (s *StatStages) Reset() {
	*s = StatStages{}
}

// Apply gets the effective value of a stat after its stage multiplier
func (s StatStages) Apply(stat StatType, value uint16) uint16 {
	mult, ok := StageMultipliers[s.Get(stat)]
	if !ok {
		mult = 1
	}

	return clampHealth(float64(value) * mult)
}
