package core

import (
	"testing"
)

func TestAttackStat(t *testing.T) {
	attack := Stat(105, 15, 50, 50, NATURE_ADAMANT, STAT_ATTACK)
	if attack != 136 {
		t.Fatalf("attack stat incorrect: expected 136, got %d", attack)
	}
}

func TestHpStat(t *testing.T) {
	hp := Stat(45, 31, 0, 100, NATURE_HARDY, STAT_HP)
	if hp != 231 {
		t.Fatalf("hp stat incorrect: expected 231, got %d", hp)
	}
}

func TestNatureMultiplier(t *testing.T) {
	neutral := Stat(100, 31, 0, 100, NATURE_HARDY, STAT_SPATTACK)
	boosted := Stat(100, 31, 0, 100, NATURE_MODEST, STAT_SPATTACK)
	lowered := Stat(100, 31, 0, 100, NATURE_ADAMANT, STAT_SPATTACK)

	if !(lowered < neutral && neutral < boosted) {
		t.Fatalf("nature ordering incorrect: lowered %d, neutral %d, boosted %d", lowered, neutral, boosted)
	}

	if neutral != 236 {
		t.Fatalf("neutral stat incorrect: expected 236, got %d", neutral)
	}
}

func TestStatMonotonicInLevel(t *testing.T) {
	bases := []uint8{1, 45, 105, 255}
	natures := []Nature{NATURE_ADAMANT, NATURE_MODEST, NATURE_HARDY}

	for stat := STAT_HP; stat <= STAT_SPEED; stat++ {
		for _, base := range bases {
			for _, nature := range natures {
				previous := uint16(0)
				for level := MIN_LEVEL; level <= MAX_LEVEL; level++ {
					value := Stat(base, MAX_IV, MAX_EV, level, nature, stat)
					if value < previous {
						t.Fatalf("%s decreased from %d to %d at level %d (base %d, %s)", stat, previous, value, level, base, nature)
					}
					previous = value
				}
			}
		}
	}
}

func TestIncrementEV(t *testing.T) {
	evs := StatSet{}

	added := evs.IncrementEV(STAT_ATTACK, 255)
	if added != MAX_EV || evs.Attack != MAX_EV {
		t.Fatalf("single ev cap not applied: added %d, attack ev %d", added, evs.Attack)
	}

	evs.IncrementEV(STAT_SPEED, 252)
	added = evs.IncrementEV(STAT_HP, 20)
	if added != 6 {
		t.Fatalf("total ev cap not applied: expected 6 added, got %d", added)
	}

	if evs.Total() != MAX_TOTAL_EV {
		t.Fatalf("expected ev total of %d, got %d", MAX_TOTAL_EV, evs.Total())
	}

	if evs.IncrementEV(STAT_DEFENSE, 1) != 0 {
		t.Fatal("evs should not increase past the total cap")
	}
}

func TestSpreadValidation(t *testing.T) {
	if _, err := CreateEVSpread(252, 252, 6, 0, 0, 0); err != nil {
		t.Fatalf("valid ev spread rejected: %s", err)
	}

	if _, err := CreateEVSpread(252, 252, 252, 0, 0, 0); err == nil {
		t.Fatal("ev spread over the total cap accepted")
	}

	if _, err := CreateIVSpread(31, 31, 31, 31, 31, 32); err == nil {
		t.Fatal("iv over the cap accepted")
	}
}

func TestRandomIVs(t *testing.T) {
	rng := SeededRNG(1, 2)
	for range 100 {
		ivs := RandomIVs(rng)
		for stat := STAT_HP; stat <= STAT_SPEED; stat++ {
			if ivs.Get(stat) > MAX_IV {
				t.Fatalf("random iv over the cap: %d", ivs.Get(stat))
			}
		}
	}
}

func TestStatStages(t *testing.T) {
	var stages StatStages

	if stages.CanChange(STAT_HP, 1) {
		t.Fatal("hp should not have a stage")
	}

	stages.Change(STAT_ATTACK, 4)
	if !stages.CanChange(STAT_ATTACK, 2) {
		t.Fatal("attack should be able to reach +6")
	}
	if stages.CanChange(STAT_ATTACK, 3) {
		t.Fatal("attack should not be able to go past +6")
	}

	stages.Change(STAT_ATTACK, 5)
	if stages.Get(STAT_ATTACK) != MAX_STAGE {
		t.Fatalf("stage not clamped: got %d", stages.Get(STAT_ATTACK))
	}

	if applied := stages.Apply(STAT_ATTACK, 100); applied != 400 {
		t.Fatalf("+6 stage should quadruple the stat: got %d", applied)
	}

	stages.Change(STAT_DEFENSE, -1)
	if applied := stages.Apply(STAT_DEFENSE, 100); applied != 66 {
		t.Fatalf("-1 stage incorrect: expected 66, got %d", applied)
	}

	stages.Reset()
	if stages.Get(STAT_ATTACK) != 0 {
		t.Fatal("stages not reset")
	}
}
