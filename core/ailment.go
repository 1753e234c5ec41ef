package core

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
)

type Ailment uint8

const (
	AILMENT_PARALYSIS Ailment = iota
	AILMENT_SLEEP
	AILMENT_FREEZE
	AILMENT_BURN
	AILMENT_POISON
)

var ailmentNames = [...]string{"paralysis", "sleep", "freeze", "burn", "poison"}

func (a Ailment) String() string {
	if int(a) < len(ailmentNames) {
		return ailmentNames[a]
	}
	return fmt.Sprintf("Ailment(%d)", a)
}

func (a Ailment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Ailment) UnmarshalText(text []byte) error {
	index := lo.IndexOf(ailmentNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown ailment: %q", text)
	}

	*a = Ailment(index)
	return nil
}

// AilmentLength is how long an ailment lasts once inflicted.
// A Permanent length only clears when cured, otherwise the turn count is sampled from [Min, Max].
type AilmentLength struct {
	Permanent bool
	Min       uint8
	Max       uint8
}

func PermanentLength() AilmentLength {
	return AilmentLength{Permanent: true}
}

func TemporaryLength(min, max uint8) AilmentLength {
	return AilmentLength{Min: min, Max: max}
}

// Turns samples a turn count once. nil means permanent.
func (l AilmentLength) Turns(rng *rand.Rand) *uint8 {
	if l.Permanent {
		return nil
	}

	low, high := l.Min, l.Max
	if low > high {
		low, high = high, low
	}

	turns := low + uint8(rng.UintN(uint(high-low)+1))
	return &turns
}

// Init creates a live ailment from this length
func (l AilmentLength) Init(ailment Ailment, rng *rand.Rand) LiveAilment {
	return LiveAilment{
		Ailment: ailment,
		Turns:   l.Turns(rng),
	}
}

// LiveAilment is an ailment currently affecting a pokemon
type LiveAilment struct {
	Ailment Ailment `json:"ailment"`
	// nil means permanent
	Turns *uint8 `json:"turns,omitempty"`
}

func NewLiveAilment(ailment Ailment, turns *uint8) LiveAilment {
	if turns != nil {
		t := *turns
		turns = &t
	}

	return LiveAilment{Ailment: ailment, Turns: turns}
}

func (l LiveAilment) Permanent() bool {
	return l.Turns == nil
}

// Decrement takes a turn off of the ailment and reports if it has run out.
// Permanent ailments never run out.
func (l *LiveAilment) Decrement() bool {
	if l.Turns == nil {
		return false
	}

	if *l.Turns > 0 {
		turns := *l.Turns - 1
		l.Turns = &turns
	}

	return *l.Turns == 0
}

func (l LiveAilment) Equal(other LiveAilment) bool {
	if l.Ailment != other.Ailment {
		return false
	}
	if l.Turns == nil || other.Turns == nil {
		return l.Turns == nil && other.Turns == nil
	}

	return *l.Turns == *other.Turns
}

func (l LiveAilment) String() string {
	if l.Turns == nil {
		return l.Ailment.String()
	}

	return fmt.Sprintf("%s (%d turns)", l.Ailment, *l.Turns)
}

// MarshalJSON writes permanent lengths as "permanent" and temporary ones as [min, max]
func (l AilmentLength) MarshalJSON() ([]byte, error) {
	if l.Permanent {
		return json.Marshal("permanent")
	}

	return json.Marshal([2]uint8{l.Min, l.Max})
}

func (l *AilmentLength) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if !strings.EqualFold(name, "permanent") {
			return fmt.Errorf("unknown ailment length: %q", name)
		}

		*l = PermanentLength()
		return nil
	}

	var bounds [2]uint8
	if err := json.Unmarshal(data, &bounds); err != nil {
		return fmt.Errorf("ailment length must be \"permanent\" or [min, max]: %w", err)
	}

	*l = TemporaryLength(bounds[0], bounds[1])
	return nil
}
