package owned

import (
	"testing"

	"github.com/nathanieltooley/klefki/core"
)

func TestPartySkipsMissingSpecies(t *testing.T) {
	saved := SavedParty{
		Generate(1, 5, nil, nil),
		Generate(999, 5, nil, nil),
		Generate(81, 12, nil, nil),
	}

	party := saved.Init(core.SeededRNG(1, 2), testRegistry())
	if len(party) != 2 {
		t.Fatalf("expected 2 party members, got %d", len(party))
	}
	if party[1].Species.ID != 81 {
		t.Fatalf("party order not kept: got %s", party[1])
	}
}

func TestPartySizeLimit(t *testing.T) {
	saved := make(SavedParty, 0, 8)
	for range 8 {
		saved = append(saved, Generate(1, 5, nil, nil))
	}

	party := saved.Init(core.SeededRNG(1, 2), testRegistry())
	if len(party) != PARTY_SIZE || !party.IsFull() {
		t.Fatalf("party should be capped at %d, got %d", PARTY_SIZE, len(party))
	}
}

func TestPartyFainted(t *testing.T) {
	party := SavedParty{Generate(1, 5, nil, nil), Generate(81, 5, nil, nil)}.Init(core.SeededRNG(1, 2), testRegistry())

	party[0].Damage(party[0].HP)
	if party.AllFainted() {
		t.Fatal("party with a healthy pokemon reported as fainted")
	}

	index, ok := party.FirstAvailable()
	if !ok || index != 1 {
		t.Fatalf("expected index 1 to be available, got %d", index)
	}

	party[1].Damage(party[1].HP)
	if !party.AllFainted() {
		t.Fatal("fully fainted party not reported")
	}

	party.HealAll()
	if party.AllFainted() || party[0].HP != party[0].MaxHP() {
		t.Fatal("heal all did not heal the party")
	}
}

func TestTrainerBuy(t *testing.T) {
	registry := testRegistry()
	potion, _ := registry.Items.TryGet("potion")

	trainer := SavedTrainer{Name: "Red", Money: 1000}.Init(core.SeededRNG(1, 2), registry)
	if !trainer.Buy(potion, 3) {
		t.Fatal("trainer could not afford 3 potions")
	}
	if trainer.Money != 100 || trainer.Bag.Count("potion") != 3 {
		t.Fatalf("unexpected money %d or potions %d", trainer.Money, trainer.Bag.Count("potion"))
	}
	if trainer.Buy(potion, 1) {
		t.Fatal("trainer bought a potion they couldn't afford")
	}
}
