package core

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type UsageKind uint8

const (
	USAGE_TODO UsageKind = iota
	USAGE_DAMAGE
	USAGE_AILMENT
	USAGE_DRAIN
	USAGE_STAT_STAGE
	USAGE_FLINCH
	USAGE_CHANCE
	USAGE_USER
	USAGE_SCRIPT
)

var usageNames = [...]string{"todo", "damage", "ailment", "drain", "stat_stage", "flinch", "chance", "user", "script"}

func (k UsageKind) String() string {
	if int(k) < len(usageNames) {
		return usageNames[k]
	}
	return fmt.Sprintf("UsageKind(%d)", k)
}

func (k UsageKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *UsageKind) UnmarshalText(text []byte) error {
	index := lo.IndexOf(usageNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown usage kind: %q", text)
	}

	*k = UsageKind(index)
	return nil
}

type DamageKindType uint8

const (
	// Value is the move power
	DAMAGE_POWER DamageKindType = iota
	// Value is a percentage of the target's current hp
	DAMAGE_PERCENT_CURRENT
	// Value is a percentage of the target's max hp
	DAMAGE_PERCENT_MAX
	// Value is the exact damage dealt
	DAMAGE_CONSTANT
)

var damageKindNames = [...]string{"power", "percent_current", "percent_max", "constant"}

func (k DamageKindType) String() string {
	if int(k) < len(damageKindNames) {
		return damageKindNames[k]
	}
	return fmt.Sprintf("DamageKindType(%d)", k)
}

func (k DamageKindType) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *DamageKindType) UnmarshalText(text []byte) error {
	index := lo.IndexOf(damageKindNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown damage kind: %q", text)
	}

	*k = DamageKindType(index)
	return nil
}

type DamageKind struct {
	Kind  DamageKindType `json:"kind"`
	Value uint16         `json:"value"`
}

func PowerDamage(power uint8) DamageKind {
	return DamageKind{Kind: DAMAGE_POWER, Value: uint16(power)}
}

func PercentCurrentDamage(percent uint8) DamageKind {
	return DamageKind{Kind: DAMAGE_PERCENT_CURRENT, Value: uint16(percent)}
}

func PercentMaxDamage(percent uint8) DamageKind {
	return DamageKind{Kind: DAMAGE_PERCENT_MAX, Value: uint16(percent)}
}

func ConstantDamage(damage Health) DamageKind {
	return DamageKind{Kind: DAMAGE_CONSTANT, Value: damage}
}

// MoveUsage is one node of a move's effect list. Kind decides which of the other fields are used:
//
//	damage:     Damage
//	ailment:    Ailment, Length, Percent
//	drain:      Damage, Percent (negative is recoil)
//	stat_stage: Stat, Stage
//	chance:     Children, Percent
//	user:       Children
//	script:     Script
type MoveUsage struct {
	Kind     UsageKind      `json:"kind"`
	Damage   *DamageKind    `json:"damage,omitempty"`
	Ailment  Ailment        `json:"ailment,omitempty"`
	Length   *AilmentLength `json:"length,omitempty"`
	Percent  int8           `json:"percent,omitempty"`
	Stat     StatType       `json:"stat,omitempty"`
	Stage    int8           `json:"stage,omitempty"`
	Children []MoveUsage    `json:"children,omitempty"`
	Script   string         `json:"script,omitempty"`
}

func DamageUsage(kind DamageKind) MoveUsage {
	return MoveUsage{Kind: USAGE_DAMAGE, Damage: &kind}
}

func AilmentUsage(ailment Ailment, length AilmentLength, percent int8) MoveUsage {
	return MoveUsage{Kind: USAGE_AILMENT, Ailment: ailment, Length: &length, Percent: percent}
}

func DrainUsage(kind DamageKind, percent int8) MoveUsage {
	return MoveUsage{Kind: USAGE_DRAIN, Damage: &kind, Percent: percent}
}

func StatStageUsage(stat StatType, stage int8) MoveUsage {
	return MoveUsage{Kind: USAGE_STAT_STAGE, Stat: stat, Stage: stage}
}

func FlinchUsage() MoveUsage {
	return MoveUsage{Kind: USAGE_FLINCH}
}

func ChanceUsage(percent int8, children ...MoveUsage) MoveUsage {
	return MoveUsage{Kind: USAGE_CHANCE, Percent: percent, Children: children}
}

func UserUsage(children ...MoveUsage) MoveUsage {
	return MoveUsage{Kind: USAGE_USER, Children: children}
}

func ScriptUsage(script string) MoveUsage {
	return MoveUsage{Kind: USAGE_SCRIPT, Script: script}
}

func TodoUsage() MoveUsage {
	return MoveUsage{Kind: USAGE_TODO}
}

// Usages counts the leaf nodes below and including this one
func (u MoveUsage) Usages() int {
	switch u.Kind {
	case USAGE_CHANCE, USAGE_USER:
		return lo.SumBy(u.Children, MoveUsage.Usages)
	}

	return 1
}
