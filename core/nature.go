package core

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

type Nature uint8

const (
	NATURE_ADAMANT Nature = iota
	NATURE_BASHFUL
	NATURE_BOLD
	NATURE_BRAVE
	NATURE_CALM
	NATURE_CAREFUL
	NATURE_DOCILE
	NATURE_GENTLE
	NATURE_HARDY
	NATURE_HASTY
	NATURE_IMPISH
	NATURE_JOLLY
	NATURE_LAX
	NATURE_LONELY
	NATURE_MILD
	NATURE_MODEST
	NATURE_NAIVE
	NATURE_NAUGHTY
	NATURE_QUIET
	NATURE_QUIRKY
	NATURE_RASH
	NATURE_RELAXED
	NATURE_SASSY
	NATURE_SERIOUS
	NATURE_TIMID

	NATURE_COUNT = 25
)

type natureInfo struct {
	name      string
	increases StatType
	decreases StatType
}

// neutral natures increase and decrease the same stat, which cancels out
var natures = [NATURE_COUNT]natureInfo{
	NATURE_ADAMANT: {"Adamant", STAT_ATTACK, STAT_SPATTACK},
	NATURE_BASHFUL: {"Bashful", STAT_SPATTACK, STAT_SPATTACK},
	NATURE_BOLD:    {"Bold", STAT_DEFENSE, STAT_ATTACK},
	NATURE_BRAVE:   {"Brave", STAT_ATTACK, STAT_SPEED},
	NATURE_CALM:    {"Calm", STAT_SPDEFENSE, STAT_ATTACK},
	NATURE_CAREFUL: {"Careful", STAT_SPDEFENSE, STAT_SPATTACK},
	NATURE_DOCILE:  {"Docile", STAT_DEFENSE, STAT_DEFENSE},
	NATURE_GENTLE:  {"Gentle", STAT_SPDEFENSE, STAT_DEFENSE},
	NATURE_HARDY:   {"Hardy", STAT_ATTACK, STAT_ATTACK},
	NATURE_HASTY:   {"Hasty", STAT_SPEED, STAT_DEFENSE},
	NATURE_IMPISH:  {"Impish", STAT_DEFENSE, STAT_SPATTACK},
	NATURE_JOLLY:   {"Jolly", STAT_SPEED, STAT_SPATTACK},
	NATURE_LAX:     {"Lax", STAT_DEFENSE, STAT_SPDEFENSE},
	NATURE_LONELY:  {"Lonely", STAT_ATTACK, STAT_DEFENSE},
	NATURE_MILD:    {"Mild", STAT_SPATTACK, STAT_DEFENSE},
	NATURE_MODEST:  {"Modest", STAT_SPATTACK, STAT_ATTACK},
	NATURE_NAIVE:   {"Naive", STAT_SPEED, STAT_SPDEFENSE},
	NATURE_NAUGHTY: {"Naughty", STAT_ATTACK, STAT_SPDEFENSE},
	NATURE_QUIET:   {"Quiet", STAT_SPATTACK, STAT_SPEED},
	NATURE_QUIRKY:  {"Quirky", STAT_SPDEFENSE, STAT_SPDEFENSE},
	NATURE_RASH:    {"Rash", STAT_SPATTACK, STAT_SPDEFENSE},
	NATURE_RELAXED: {"Relaxed", STAT_DEFENSE, STAT_SPEED},
	NATURE_SASSY:   {"Sassy", STAT_SPDEFENSE, STAT_SPEED},
	NATURE_SERIOUS: {"Serious", STAT_SPEED, STAT_SPEED},
	NATURE_TIMID:   {"Timid", STAT_SPEED, STAT_ATTACK},
}

func (n Nature) valid() bool {
	return n < NATURE_COUNT
}

func (n Nature) String() string {
	if !n.valid() {
		return fmt.Sprintf("Nature(%d)", n)
	}

	return natures[n].name
}

func (n Nature) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Nature) UnmarshalText(text []byte) error {
	for i, info := range natures {
		if strings.EqualFold(info.name, string(text)) {
			*n = Nature(i)
			return nil
		}
	}

	return fmt.Errorf("unknown nature: %q", text)
}

// Neutral natures don't change any stat
func (n Nature) Neutral() bool {
	return !n.valid() || natures[n].increases == natures[n].decreases
}

// Increases returns the stat this nature boosts, if any
func (n Nature) Increases() (StatType, bool) {
	if n.Neutral() {
		return STAT_HP, false
	}

	return natures[n].increases, true
}

// Decreases returns the stat this nature lowers, if any
func (n Nature) Decreases() (StatType, bool) {
	if n.Neutral() {
		return STAT_HP, false
	}

	return natures[n].decreases, true
}

// Multiplier is 1.1 for the boosted stat, 0.9 for the lowered stat and 1 otherwise.
// The multipliers are float32 values; Stat widens them to float64.
func (n Nature) Multiplier(stat StatType) float32 {
	if up, ok := n.Increases(); ok && up == stat {
		return 1.1
	}
	if down, ok := n.Decreases(); ok && down == stat {
		return 0.9
	}

	return 1
}

func RandomNature(rng *rand.Rand) Nature {
	return Nature(rng.IntN(NATURE_COUNT))
}
