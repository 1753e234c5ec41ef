package battle

import (
	"testing"

	"github.com/nathanieltooley/klefki/core"
)

func TestPowerDamage(t *testing.T) {
	registry := testRegistry()
	user := testBattler(t, registry, normalmon)
	target := testBattler(t, registry, normalmon)

	if user.Stat(core.STAT_ATTACK) != 112 || target.Stat(core.STAT_DEFENSE) != 112 {
		t.Fatalf("unexpected test stats: %d attack, %d defense", user.Stat(core.STAT_ATTACK), target.Stat(core.STAT_DEFENSE))
	}

	tests := []struct {
		name        string
		moveType    core.PokemonType
		crit        bool
		damageRange uint8
		expected    core.Health
	}{
		{"low roll with stab", core.TYPE_NORMAL, false, 85, 24},
		{"high roll with stab", core.TYPE_NORMAL, false, 100, 28},
		{"crit with stab", core.TYPE_NORMAL, true, 100, 42},
		{"low crit with stab", core.TYPE_NORMAL, true, 85, 36},
		{"super effective without stab", core.TYPE_FIGHTING, false, 100, 36},
	}

	for _, test := range tests {
		result, ok := PowerDamage(user, target, 40, core.CATEGORY_PHYSICAL, test.moveType, test.crit, test.damageRange)
		if !ok {
			t.Fatalf("%s: damage was ineffective", test.name)
		}
		if result.Damage != test.expected {
			t.Errorf("%s: expected %d damage, got %d", test.name, test.expected, result.Damage)
		}
		if result.Crit != test.crit {
			t.Errorf("%s: crit not carried into the result", test.name)
		}
	}
}

func TestPowerDamageIneffective(t *testing.T) {
	registry := testRegistry()
	user := testBattler(t, registry, normalmon)
	ghost := testBattler(t, registry, ghostmon)

	if _, ok := PowerDamage(user, ghost, 40, core.CATEGORY_PHYSICAL, core.TYPE_NORMAL, true, 100); ok {
		t.Fatal("normal move hit a ghost type")
	}
}

func TestPowerDamageStages(t *testing.T) {
	registry := testRegistry()
	user := testBattler(t, registry, normalmon)
	target := testBattler(t, registry, normalmon)

	base, _ := PowerDamage(user, target, 40, core.CATEGORY_PHYSICAL, core.TYPE_NORMAL, false, 100)

	user.Stages.Change(core.STAT_ATTACK, 2)
	boosted, _ := PowerDamage(user, target, 40, core.CATEGORY_PHYSICAL, core.TYPE_NORMAL, false, 100)
	if boosted.Damage <= base.Damage {
		t.Fatalf("attack boost did not raise damage: %d vs %d", boosted.Damage, base.Damage)
	}

	special, _ := PowerDamage(user, target, 40, core.CATEGORY_SPECIAL, core.TYPE_NORMAL, false, 100)
	if special.Damage != base.Damage {
		t.Fatal("special moves should not use attack stages")
	}
}

func TestCritChance(t *testing.T) {
	tests := []struct {
		rate     uint8
		expected float64
	}{
		{0, 1.0 / 16.0},
		{1, 1.0 / 8.0},
		{2, 1.0 / 4.0},
		{3, 1.0 / 3.0},
		{4, 1.0 / 2.0},
		{200, 1.0 / 2.0},
	}

	for _, test := range tests {
		if chance := CritChance(test.rate); chance != test.expected {
			t.Errorf("rate %d: expected %f, got %f", test.rate, test.expected, chance)
		}
	}
}

func TestDrainHeal(t *testing.T) {
	tests := []struct {
		damage   core.Health
		percent  int8
		expected int16
	}{
		{28, 50, 14},
		{27, 50, 14},
		{28, -25, -7},
		{0, 50, 0},
		{65535, 100, 32767},
	}

	for _, test := range tests {
		if heal := DrainHeal(test.damage, test.percent); heal != test.expected {
			t.Errorf("%d damage at %d%%: expected %d, got %d", test.damage, test.percent, test.expected, heal)
		}
	}
}
