// Package core contains all foundational static data, types and pure functions for dealing with game data:
// elemental types, stats, natures, species, moves, items and ailments.
// core CANNOT depend on the other packages of this module except dex.
package core

import (
	"fmt"
	"strings"
)

type PokemonType uint8

const (
	TYPE_UNKNOWN PokemonType = iota
	TYPE_NORMAL
	TYPE_FIRE
	TYPE_WATER
	TYPE_ELECTRIC
	TYPE_GRASS
	TYPE_ICE
	TYPE_FIGHTING
	TYPE_POISON
	TYPE_GROUND
	TYPE_FLYING
	TYPE_PSYCHIC
	TYPE_BUG
	TYPE_ROCK
	TYPE_GHOST
	TYPE_DRAGON
	TYPE_DARK
	TYPE_STEEL
	TYPE_FAIRY
)

var typeNames = [...]string{
	TYPE_UNKNOWN:  "Unknown",
	TYPE_NORMAL:   "Normal",
	TYPE_FIRE:     "Fire",
	TYPE_WATER:    "Water",
	TYPE_ELECTRIC: "Electric",
	TYPE_GRASS:    "Grass",
	TYPE_ICE:      "Ice",
	TYPE_FIGHTING: "Fighting",
	TYPE_POISON:   "Poison",
	TYPE_GROUND:   "Ground",
	TYPE_FLYING:   "Flying",
	TYPE_PSYCHIC:  "Psychic",
	TYPE_BUG:      "Bug",
	TYPE_ROCK:     "Rock",
	TYPE_GHOST:    "Ghost",
	TYPE_DRAGON:   "Dragon",
	TYPE_DARK:     "Dark",
	TYPE_STEEL:    "Steel",
	TYPE_FAIRY:    "Fairy",
}

func (t PokemonType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}

	return fmt.Sprintf("PokemonType(%d)", t)
}

func (t PokemonType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *PokemonType) UnmarshalText(text []byte) error {
	parsed, err := ParsePokemonType(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// ParsePokemonType turns a type name (case insensitive) into a PokemonType
func ParsePokemonType(name string) (PokemonType, error) {
	for i, typeName := range typeNames {
		if strings.EqualFold(typeName, name) {
			return PokemonType(i), nil
		}
	}

	return TYPE_UNKNOWN, fmt.Errorf("unknown pokemon type: %q", name)
}

// Effectiveness is the damage multiplier of an attacking type against one or more defending types.
// Values are always products of 0, 0.5, 1 and 2, so composing them is exact and associative.
type Effectiveness float64

const (
	INEFFECTIVE     Effectiveness = 0
	NOT_EFFECTIVE   Effectiveness = 0.5
	EFFECTIVE       Effectiveness = 1
	SUPER_EFFECTIVE Effectiveness = 2
)

// Combine composes two effectiveness values. INEFFECTIVE is absorbing.
func (e Effectiveness) Combine(other Effectiveness) Effectiveness {
	if e == INEFFECTIVE || other == INEFFECTIVE {
		return INEFFECTIVE
	}

	return e * other
}

func (e Effectiveness) Multiplier() float64 {
	return float64(e)
}

func (e Effectiveness) IsIneffective() bool {
	return e == INEFFECTIVE
}

func (e Effectiveness) String() string {
	switch {
	case e == INEFFECTIVE:
		return "ineffective"
	case e < EFFECTIVE:
		return "not very effective"
	case e > EFFECTIVE:
		return "super effective"
	default:
		return "effective"
	}
}

// Types is the one or two types a species has
type Types struct {
	Primary   PokemonType  `json:"primary"`
	Secondary *PokemonType `json:"secondary,omitempty"`
}

func NewTypes(primary PokemonType, secondary ...PokemonType) Types {
	types := Types{Primary: primary}
	if len(secondary) > 0 {
		second := secondary[0]
		types.Secondary = &second
	}

	return types
}

func (t Types) Has(pokemonType PokemonType) bool {
	return t.Primary == pokemonType || (t.Secondary != nil && *t.Secondary == pokemonType)
}

// DefenseEffectiveness gets the effectiveness of an attack type against both of these types
func (t Types) DefenseEffectiveness(attackType PokemonType) Effectiveness {
	effectiveness := attackType.AttackEffectiveness(t.Primary)
	if t.Secondary != nil {
		effectiveness = effectiveness.Combine(attackType.AttackEffectiveness(*t.Secondary))
	}

	return effectiveness
}

// AttackEffectiveness gives the type effectiveness of an attack of this type against a given defense type.
// For instance, if t is Grass, Water gives SUPER_EFFECTIVE and Fire gives NOT_EFFECTIVE.
func (t PokemonType) AttackEffectiveness(defenseType PokemonType) Effectiveness {
	matchups, ok := typeChart[t]
	if !ok {
		return EFFECTIVE
	}

	effectiveness, ok := matchups[defenseType]
	if !ok {
		return EFFECTIVE
	}

	return effectiveness
}

var typeChart = map[PokemonType]map[PokemonType]Effectiveness{
	TYPE_NORMAL: {
		TYPE_ROCK:  NOT_EFFECTIVE,
		TYPE_STEEL: NOT_EFFECTIVE,

		TYPE_GHOST: INEFFECTIVE,
	},
	TYPE_FIRE: {
		TYPE_GRASS: SUPER_EFFECTIVE,
		TYPE_ICE:   SUPER_EFFECTIVE,
		TYPE_BUG:   SUPER_EFFECTIVE,
		TYPE_STEEL: SUPER_EFFECTIVE,

		TYPE_FIRE:   NOT_EFFECTIVE,
		TYPE_WATER:  NOT_EFFECTIVE,
		TYPE_ROCK:   NOT_EFFECTIVE,
		TYPE_DRAGON: NOT_EFFECTIVE,
	},
	TYPE_WATER: {
		TYPE_FIRE:   SUPER_EFFECTIVE,
		TYPE_GROUND: SUPER_EFFECTIVE,
		TYPE_ROCK:   SUPER_EFFECTIVE,

		TYPE_WATER:  NOT_EFFECTIVE,
		TYPE_GRASS:  NOT_EFFECTIVE,
		TYPE_DRAGON: NOT_EFFECTIVE,
	},
	TYPE_ELECTRIC: {
		TYPE_WATER:  SUPER_EFFECTIVE,
		TYPE_FLYING: SUPER_EFFECTIVE,

		TYPE_ELECTRIC: NOT_EFFECTIVE,
		TYPE_GRASS:    NOT_EFFECTIVE,
		TYPE_DRAGON:   NOT_EFFECTIVE,

		TYPE_GROUND: INEFFECTIVE,
	},
	TYPE_GRASS: {
		TYPE_WATER:  SUPER_EFFECTIVE,
		TYPE_GROUND: SUPER_EFFECTIVE,
		TYPE_ROCK:   SUPER_EFFECTIVE,

		TYPE_FIRE:   NOT_EFFECTIVE,
		TYPE_GRASS:  NOT_EFFECTIVE,
		TYPE_POISON: NOT_EFFECTIVE,
		TYPE_FLYING: NOT_EFFECTIVE,
		TYPE_BUG:    NOT_EFFECTIVE,
		TYPE_DRAGON: NOT_EFFECTIVE,
		TYPE_STEEL:  NOT_EFFECTIVE,
	},
	TYPE_ICE: {
		TYPE_GRASS:  SUPER_EFFECTIVE,
		TYPE_GROUND: SUPER_EFFECTIVE,
		TYPE_FLYING: SUPER_EFFECTIVE,
		TYPE_DRAGON: SUPER_EFFECTIVE,

		TYPE_FIRE:  NOT_EFFECTIVE,
		TYPE_WATER: NOT_EFFECTIVE,
		TYPE_ICE:   NOT_EFFECTIVE,
		TYPE_STEEL: NOT_EFFECTIVE,
	},
	TYPE_FIGHTING: {
		TYPE_NORMAL: SUPER_EFFECTIVE,
		TYPE_ICE:    SUPER_EFFECTIVE,
		TYPE_ROCK:   SUPER_EFFECTIVE,
		TYPE_DARK:   SUPER_EFFECTIVE,
		TYPE_STEEL:  SUPER_EFFECTIVE,

		TYPE_POISON:  NOT_EFFECTIVE,
		TYPE_FLYING:  NOT_EFFECTIVE,
		TYPE_PSYCHIC: NOT_EFFECTIVE,
		TYPE_BUG:     NOT_EFFECTIVE,
		TYPE_FAIRY:   NOT_EFFECTIVE,

		TYPE_GHOST: INEFFECTIVE,
	},
	TYPE_POISON: {
		TYPE_GRASS: SUPER_EFFECTIVE,
		TYPE_FAIRY: SUPER_EFFECTIVE,

		TYPE_POISON: NOT_EFFECTIVE,
		TYPE_GROUND: NOT_EFFECTIVE,
		TYPE_ROCK:   NOT_EFFECTIVE,
		TYPE_GHOST:  NOT_EFFECTIVE,

		TYPE_STEEL: INEFFECTIVE,
	},
	TYPE_GROUND: {
		TYPE_FIRE:     SUPER_EFFECTIVE,
		TYPE_ELECTRIC: SUPER_EFFECTIVE,
		TYPE_POISON:   SUPER_EFFECTIVE,
		TYPE_ROCK:     SUPER_EFFECTIVE,
		TYPE_STEEL:    SUPER_EFFECTIVE,

		TYPE_GRASS: NOT_EFFECTIVE,
		TYPE_BUG:   NOT_EFFECTIVE,

		TYPE_FLYING: INEFFECTIVE,
	},
	TYPE_FLYING: {
		TYPE_GRASS:    SUPER_EFFECTIVE,
		TYPE_FIGHTING: SUPER_EFFECTIVE,
		TYPE_BUG:      SUPER_EFFECTIVE,

		TYPE_ELECTRIC: NOT_EFFECTIVE,
		TYPE_ROCK:     NOT_EFFECTIVE,
		TYPE_STEEL:    NOT_EFFECTIVE,
	},
	TYPE_PSYCHIC: {
		TYPE_FIGHTING: SUPER_EFFECTIVE,
		TYPE_POISON:   SUPER_EFFECTIVE,

		TYPE_PSYCHIC: NOT_EFFECTIVE,
		TYPE_STEEL:   NOT_EFFECTIVE,

		TYPE_DARK: INEFFECTIVE,
	},
	TYPE_BUG: {
		TYPE_GRASS:   SUPER_EFFECTIVE,
		TYPE_PSYCHIC: SUPER_EFFECTIVE,
		TYPE_DARK:    SUPER_EFFECTIVE,

		TYPE_FIRE:     NOT_EFFECTIVE,
		TYPE_FIGHTING: NOT_EFFECTIVE,
		TYPE_POISON:   NOT_EFFECTIVE,
		TYPE_FLYING:   NOT_EFFECTIVE,
		TYPE_GHOST:    NOT_EFFECTIVE,
		TYPE_STEEL:    NOT_EFFECTIVE,
		TYPE_FAIRY:    NOT_EFFECTIVE,
	},
	TYPE_ROCK: {
		TYPE_FIRE:   SUPER_EFFECTIVE,
		TYPE_ICE:    SUPER_EFFECTIVE,
		TYPE_FLYING: SUPER_EFFECTIVE,
		TYPE_BUG:    SUPER_EFFECTIVE,

		TYPE_FIGHTING: NOT_EFFECTIVE,
		TYPE_GROUND:   NOT_EFFECTIVE,
		TYPE_STEEL:    NOT_EFFECTIVE,
	},
	TYPE_GHOST: {
		TYPE_PSYCHIC: SUPER_EFFECTIVE,
		TYPE_GHOST:   SUPER_EFFECTIVE,

		TYPE_DARK: NOT_EFFECTIVE,

		TYPE_NORMAL: INEFFECTIVE,
	},
	TYPE_DRAGON: {
		TYPE_DRAGON: SUPER_EFFECTIVE,

		TYPE_STEEL: NOT_EFFECTIVE,

		TYPE_FAIRY: INEFFECTIVE,
	},
	TYPE_DARK: {
		TYPE_PSYCHIC: SUPER_EFFECTIVE,
		TYPE_GHOST:   SUPER_EFFECTIVE,

		TYPE_FIGHTING: NOT_EFFECTIVE,
		TYPE_DARK:     NOT_EFFECTIVE,
		TYPE_FAIRY:    NOT_EFFECTIVE,
	},
	TYPE_STEEL: {
		TYPE_ICE:   SUPER_EFFECTIVE,
		TYPE_ROCK:  SUPER_EFFECTIVE,
		TYPE_FAIRY: SUPER_EFFECTIVE,

		TYPE_FIRE:     NOT_EFFECTIVE,
		TYPE_WATER:    NOT_EFFECTIVE,
		TYPE_ELECTRIC: NOT_EFFECTIVE,
		TYPE_STEEL:    NOT_EFFECTIVE,
	},
	TYPE_FAIRY: {
		TYPE_FIGHTING: SUPER_EFFECTIVE,
		TYPE_DRAGON:   SUPER_EFFECTIVE,
		TYPE_DARK:     SUPER_EFFECTIVE,

		TYPE_FIRE:   NOT_EFFECTIVE,
		TYPE_POISON: NOT_EFFECTIVE,
		TYPE_STEEL:  NOT_EFFECTIVE,
	},
}
