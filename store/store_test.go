package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/nathanieltooley/klefki/core"
	"github.com/nathanieltooley/klefki/owned"
)

func testParty(size int) owned.SavedParty {
	party := make(owned.SavedParty, 0, size)
	for i := range size {
		party = append(party, owned.Generate(core.SpeciesID(i+1), core.Level(5+i), nil, nil))
	}
	return party
}

func TestTeamRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "teams.json")

	if err := SaveTeam(path, "main", testParty(3)); err != nil {
		t.Fatal(err)
	}
	if err := SaveTeam(path, "big", testParty(8)); err != nil {
		t.Fatal(err)
	}

	team, err := LoadTeam(path, "main")
	if err != nil {
		t.Fatal(err)
	}
	if len(team) != 3 || team[2].Species != 3 || team[2].Level != 7 {
		t.Fatalf("team changed on round trip: %+v", team)
	}

	big, err := LoadTeam(path, "big")
	if err != nil {
		t.Fatal(err)
	}
	if len(big) != owned.PARTY_SIZE {
		t.Fatalf("saved team should be capped at %d, got %d", owned.PARTY_SIZE, len(big))
	}

	names, err := TeamNames(path)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(names, []string{"big", "main"}) {
		t.Fatalf("unexpected team names: %v", names)
	}

	if err := DeleteTeam(path, "big"); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTeam(path, "big"); !errors.Is(err, ErrNoSuchTeam) {
		t.Fatalf("expected no such team, got %v", err)
	}
	if err := DeleteTeam(path, "big"); !errors.Is(err, ErrNoSuchTeam) {
		t.Fatalf("expected no such team on a second delete, got %v", err)
	}
}

func TestTeamFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o666); err != nil {
		t.Fatal(err)
	}

	teams, err := LoadTeamMap(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(teams) != 0 {
		t.Fatalf("corrupt file should load as empty, got %d teams", len(teams))
	}

	if err := SaveTeam(path, "fresh", testParty(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTeam(path, "fresh"); err != nil {
		t.Fatal(err)
	}
}

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "klefki.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	return store
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite(" "); err == nil {
		t.Fatal("expected an error for an empty path")
	}
}

func TestTrainerRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	trainer := owned.SavedTrainer{
		Name:  "Red",
		Party: testParty(2),
		Bag:   owned.SavedBag{{Item: "potion", Count: 4}},
		Money: 3000,
	}

	id, err := store.CreateTrainer(ctx, trainer)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := store.LoadTrainer(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "Red" || loaded.Money != 3000 || len(loaded.Party) != 2 || len(loaded.Bag) != 1 {
		t.Fatalf("trainer changed on round trip: %+v", loaded)
	}
	if loaded.Party[1].IVs != core.DefaultIVs() {
		t.Fatal("party ivs changed on round trip")
	}

	loaded.Money = 10
	if err := store.SaveTrainer(ctx, id, loaded); err != nil {
		t.Fatal(err)
	}

	summaries, err := store.ListTrainers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 || summaries[0].ID != id || summaries[0].Money != 10 {
		t.Fatalf("unexpected trainer list: %+v", summaries)
	}

	if err := store.DeleteTrainer(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := store.LoadTrainer(ctx, id); !errors.Is(err, ErrNoSuchTrainer) {
		t.Fatalf("expected no such trainer, got %v", err)
	}
}

func TestMissingTrainer(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	id := uuid.New()

	if err := store.SaveTrainer(ctx, id, owned.SavedTrainer{Name: "Blue"}); !errors.Is(err, ErrNoSuchTrainer) {
		t.Fatalf("expected no such trainer on save, got %v", err)
	}
	if err := store.DeleteTrainer(ctx, id); !errors.Is(err, ErrNoSuchTrainer) {
		t.Fatalf("expected no such trainer on delete, got %v", err)
	}
}
