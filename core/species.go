package core

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
)

type (
	SpeciesID  uint16
	Level      = uint8
	Experience = uint32
	Friendship = uint8
	Health     = uint16
)

const (
	SPECIES_UNKNOWN SpeciesID = 0

	MIN_LEVEL Level = 1
	MAX_LEVEL Level = 100

	DEFAULT_FRIENDSHIP Friendship = 70
)

type Gender uint8

const (
	GENDER_NONE Gender = iota
	GENDER_MALE
	GENDER_FEMALE
)

var genderNames = [...]string{"none", "male", "female"}

func (g Gender) String() string {
	if int(g) < len(genderNames) {
		return genderNames[g]
	}
	return fmt.Sprintf("Gender(%d)", g)
}

func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(text []byte) error {
	index := lo.IndexOf(genderNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown gender: %q", text)
	}

	*g = Gender(index)
	return nil
}

// GrowthRate is how fast a species levels up
type GrowthRate uint8

const (
	GROWTH_MEDIUM_SLOW GrowthRate = iota
	GROWTH_SLOW
	GROWTH_FAST
	GROWTH_MEDIUM
	GROWTH_FAST_THEN_VERY_SLOW
	GROWTH_SLOW_THEN_VERY_FAST
)

var growthNames = [...]string{"medium-slow", "slow", "fast", "medium", "fast-then-very-slow", "slow-then-very-fast"}

func (g GrowthRate) String() string {
	if int(g) < len(growthNames) {
		return growthNames[g]
	}
	return fmt.Sprintf("GrowthRate(%d)", g)
}

func (g GrowthRate) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *GrowthRate) UnmarshalText(text []byte) error {
	index := lo.IndexOf(growthNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown growth rate: %q", text)
	}

	*g = GrowthRate(index)
	return nil
}

// MaxExp gets the amount of experience a pokemon at this level needs to level up
func (g GrowthRate) MaxExp(level Level) Experience {
	l := int64(level)

	var exp int64
	switch level {
	case 0:
		exp = 0
	case 1:
		exp = 1
	default:
		switch g {
		case GROWTH_SLOW:
			exp = 5 * ((l * l * l) >> 2)
		case GROWTH_FAST:
			exp = ((l * l * l) << 2) / 5
		case GROWTH_MEDIUM:
			exp = l * l * l
		default:
			// Medium slow, the erratic curves use the same thresholds for now
			exp = (6*l*l*l)/5 - 15*l*l + 100*l - 140
		}
	}

	return Experience(max(exp, 0))
}

// LearnableMove is a move a species can learn at a certain level
type LearnableMove struct {
	Level Level  `json:"level"`
	Move  MoveID `json:"move"`
}

type Training struct {
	BaseExp uint16     `json:"base_exp"`
	Growth  GrowthRate `json:"growth_rate"`
}

type Breeding struct {
	// Percent chance (0 - 100) for the species to be male. nil means genderless.
	Gender *uint8 `json:"gender,omitempty"`
}

// Species is the base stats, types and learnset of a pokemon, as if it were a PokeDex entry.
type Species struct {
	ID       SpeciesID       `json:"id"`
	Name     string          `json:"name"`
	Types    Types           `json:"types"`
	Base     StatSet         `json:"base"`
	Learnset []LearnableMove `json:"moves"`
	Training Training        `json:"training"`
	Breeding Breeding        `json:"breeding"`
	// Height in decimeters
	Height uint8 `json:"height"`
	// Weight in hectograms
	Weight uint16 `json:"weight"`
}

func (s Species) EntryID() SpeciesID { return s.ID }
func (s Species) EntryName() string  { return s.Name }

// UnknownSpecies is the placeholder every species dex falls back to
func UnknownSpecies() Species {
	return Species{
		ID:    SPECIES_UNKNOWN,
		Name:  "Unknown",
		Types: NewTypes(TYPE_UNKNOWN),
		Base:  UniformStats(1),
	}
}

// Stat gets the real value of one of this species' stats
func (s Species) Stat(ivs, evs StatSet, level Level, nature Nature, stat StatType) uint16 {
	return Stat(s.Base.Get(stat), ivs.Get(stat), evs.Get(stat), level, nature, stat)
}

// DefenseEffectiveness gets the effectiveness of an attack type against this species
func (s Species) DefenseEffectiveness(attackType PokemonType) Effectiveness {
	return s.Types.DefenseEffectiveness(attackType)
}

// GenerateGender rolls a gender from the species' gender ratio
func (s Species) GenerateGender(rng *rand.Rand) Gender {
	if s.Breeding.Gender == nil {
		return GENDER_NONE
	}

	if rng.IntN(100) < int(*s.Breeding.Gender) {
		return GENDER_MALE
	}

	return GENDER_FEMALE
}

// ExpFrom is the amount of experience gained from defeating this species at a level
func (s Species) ExpFrom(level Level) Experience {
	return Experience(uint32(s.Training.BaseExp) * uint32(level) / 7)
}

// MovesAt gets the moves learnable in levels (from, to], in learnset order
func (s Species) MovesAt(from Level, to Level) []MoveID {
	return lo.FilterMap(s.Learnset, func(m LearnableMove, _ int) (MoveID, bool) {
		return m.Move, m.Level > from && m.Level <= to
	})
}

// MovesAtLevel gets the moves learned at exactly this level
func (s Species) MovesAtLevel(level Level) []MoveID {
	return s.MovesAt(level-1, level)
}
