package core

import (
	"encoding/json"
	"testing"
)

var allEffectiveness = []Effectiveness{INEFFECTIVE, NOT_EFFECTIVE, EFFECTIVE, SUPER_EFFECTIVE}

func TestIneffectiveIsAbsorbing(t *testing.T) {
	for _, e := range allEffectiveness {
		if INEFFECTIVE.Combine(e) != INEFFECTIVE || e.Combine(INEFFECTIVE) != INEFFECTIVE {
			t.Fatalf("ineffective combined with %v was not ineffective", e)
		}
	}
}

func TestEffectivenessAssociative(t *testing.T) {
	for _, a := range allEffectiveness {
		for _, b := range allEffectiveness {
			for _, c := range allEffectiveness {
				left := a.Combine(b).Combine(c)
				right := a.Combine(b.Combine(c))
				if left != right {
					t.Fatalf("(%v * %v) * %v = %v but %v * (%v * %v) = %v", a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestDualTypeEffectiveness(t *testing.T) {
	tests := []struct {
		name     string
		attack   PokemonType
		defense  Types
		expected Effectiveness
	}{
		{"ground vs electric/flying", TYPE_GROUND, NewTypes(TYPE_ELECTRIC, TYPE_FLYING), INEFFECTIVE},
		{"ice vs grass/flying", TYPE_ICE, NewTypes(TYPE_GRASS, TYPE_FLYING), 4},
		{"fire vs water/rock", TYPE_FIRE, NewTypes(TYPE_WATER, TYPE_ROCK), 0.25},
		{"normal vs normal", TYPE_NORMAL, NewTypes(TYPE_NORMAL), EFFECTIVE},
		{"psychic vs dark", TYPE_PSYCHIC, NewTypes(TYPE_DARK), INEFFECTIVE},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.defense.DefenseEffectiveness(test.attack)
			if got != test.expected {
				t.Fatalf("expected %v, got %v", float64(test.expected), float64(got))
			}
		})
	}
}

func TestEffectivenessString(t *testing.T) {
	if INEFFECTIVE.String() != "ineffective" || Effectiveness(4).String() != "super effective" || Effectiveness(0.25).String() != "not very effective" {
		t.Fatal("effectiveness strings incorrect")
	}
}

func TestTypeText(t *testing.T) {
	types := NewTypes(TYPE_FIRE, TYPE_FLYING)
	data, err := json.Marshal(types)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != `{"primary":"Fire","secondary":"Flying"}` {
		t.Fatalf("unexpected json: %s", data)
	}

	decoded := Types{}
	if err := json.Unmarshal([]byte(`{"primary":"water"}`), &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.Primary != TYPE_WATER || decoded.Secondary != nil {
		t.Fatalf("unexpected types: %+v", decoded)
	}
}
