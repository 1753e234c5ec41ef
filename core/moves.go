package core

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type MoveID string

const MOVE_UNKNOWN MoveID = "unknown"

type MoveCategory uint8

const (
	CATEGORY_PHYSICAL MoveCategory = iota
	CATEGORY_SPECIAL
	CATEGORY_STATUS
)

var categoryNames = [...]string{"physical", "special", "status"}

func (c MoveCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("MoveCategory(%d)", c)
}

func (c MoveCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *MoveCategory) UnmarshalText(text []byte) error {
	index := lo.IndexOf(categoryNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown move category: %q", text)
	}

	*c = MoveCategory(index)
	return nil
}

// Stats returns the attacking and defending stat a move of this category uses.
// Status moves report the physical pair.
func (c MoveCategory) Stats() (attack StatType, defense StatType) {
	if c == CATEGORY_SPECIAL {
		return STAT_SPATTACK, STAT_SPDEFENSE
	}

	return STAT_ATTACK, STAT_DEFENSE
}

type MoveTarget uint8

const (
	TARGET_TODO MoveTarget = iota
	TARGET_ANY
	TARGET_ALLY
	TARGET_ALLIES
	TARGET_USER_OR_ALLY
	TARGET_USER_AND_ALLIES
	TARGET_USER
	TARGET_OPPONENT
	TARGET_ALL_OPPONENTS
	TARGET_RANDOM_OPPONENT
	TARGET_ALL_OTHER_POKEMON
	TARGET_ALL_POKEMON
)

var targetNames = [...]string{
	"todo",
	"any",
	"ally",
	"allies",
	"user-or-ally",
	"user-and-allies",
	"user",
	"opponent",
	"all-opponents",
	"random-opponent",
	"all-other-pokemon",
	"all-pokemon",
}

func (t MoveTarget) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return fmt.Sprintf("MoveTarget(%d)", t)
}

func (t MoveTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *MoveTarget) UnmarshalText(text []byte) error {
	index := lo.IndexOf(targetNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown move target: %q", text)
	}

	*t = MoveTarget(index)
	return nil
}

type Move struct {
	ID       MoveID       `json:"id"`
	Name     string       `json:"name"`
	Category MoveCategory `json:"category"`
	Type     PokemonType  `json:"type"`
	// Display power. Damage nodes carry the power they actually use.
	Power *uint8 `json:"power,omitempty"`
	// nil means the move can't miss
	Accuracy *uint8      `json:"accuracy,omitempty"`
	PP       uint8       `json:"pp"`
	Priority int8        `json:"priority"`
	Target   MoveTarget  `json:"target"`
	CritRate uint8       `json:"crit_rate"`
	Contact  bool        `json:"contact"`
	Usage    []MoveUsage `json:"usage"`
}

func (m Move) EntryID() MoveID   { return m.ID }
func (m Move) EntryName() string { return m.Name }

// Usages counts the leaf usage nodes of the move. Used to size result lists.
func (m Move) Usages() int {
	return lo.SumBy(m.Usage, MoveUsage.Usages)
}

// IsDamaging reports whether any part of the move deals damage
func (m Move) IsDamaging() bool {
	var walk func(usages []MoveUsage) bool
	walk = func(usages []MoveUsage) bool {
		return lo.SomeBy(usages, func(u MoveUsage) bool {
			switch u.Kind {
			case USAGE_DAMAGE, USAGE_DRAIN:
				return true
			case USAGE_CHANCE, USAGE_USER:
				return walk(u.Children)
			}
			return false
		})
	}

	return walk(m.Usage)
}

func UnknownMove() Move {
	return Move{
		ID:       MOVE_UNKNOWN,
		Name:     "Unknown",
		Category: CATEGORY_STATUS,
		Type:     TYPE_UNKNOWN,
		PP:       1,
		Usage:    []MoveUsage{TodoUsage()},
	}
}
