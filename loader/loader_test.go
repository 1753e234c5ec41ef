package loader

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/nathanieltooley/klefki/core"
)

const speciesJSON = `[
	{
		"id": 1,
		"name": "Bulbasaur",
		"types": {"primary": "grass", "secondary": "poison"},
		"base": {"hp": 45, "atk": 49, "def": 49, "sp_atk": 65, "sp_def": 65, "speed": 45},
		"moves": [{"level": 1, "move": "tackle"}, {"level": 3, "move": "growl"}],
		"training": {"base_exp": 64, "growth_rate": "medium-slow"},
		"breeding": {"gender": 87}
	},
	{
		"id": 81,
		"name": "Magnemite",
		"types": {"primary": "electric", "secondary": "steel"},
		"base": {"hp": 25, "atk": 35, "def": 70, "sp_atk": 95, "sp_def": 55, "speed": 45},
		"training": {"base_exp": 65, "growth_rate": "medium"}
	}
]`

const movesJSON = `[
	{
		"id": "tackle",
		"name": "Tackle",
		"category": "physical",
		"type": "normal",
		"power": 40,
		"accuracy": 100,
		"pp": 35,
		"target": "opponent",
		"contact": true,
		"usage": [{"kind": "damage", "damage": {"kind": "power", "value": 40}}]
	},
	{
		"id": "growl",
		"name": "Growl",
		"category": "status",
		"type": "normal",
		"accuracy": 100,
		"pp": 40,
		"target": "all-opponents",
		"usage": [{"kind": "stat_stage", "stat": "attack", "stage": -1}]
	},
	{
		"id": "thunder-shock",
		"name": "Thunder Shock",
		"category": "special",
		"type": "electric",
		"power": 40,
		"accuracy": 100,
		"pp": 30,
		"usage": [
			{"kind": "damage", "damage": {"kind": "power", "value": 40}},
			{"kind": "chance", "percent": 10, "children": [
				{"kind": "ailment", "ailment": "paralysis", "length": "permanent", "percent": 100}
			]}
		]
	}
]`

const itemsJSON = `[
	{
		"id": "potion",
		"name": "Potion",
		"price": 300,
		"usage": {"kind": "actions", "actions": [{"kind": "heal", "amount": 20}]}
	},
	{
		"id": "bicycle",
		"name": "Bicycle",
		"category": "key-items",
		"stackable": 1,
		"usage": {"kind": "none", "consume": false}
	}
]`

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"data/species.json": {Data: []byte(speciesJSON)},
		"data/moves.json":   {Data: []byte(movesJSON)},
		"data/items.json":   {Data: []byte(itemsJSON)},
	}
}

func TestLoad(t *testing.T) {
	registry, err := Load(testFiles(), "data")
	if err != nil {
		t.Fatal(err)
	}

	// every dex also holds its unknown entry
	if registry.Species.Len() != 3 || registry.Moves.Len() != 4 || registry.Items.Len() != 3 {
		t.Fatalf("unexpected registry sizes: %d species, %d moves, %d items", registry.Species.Len(), registry.Moves.Len(), registry.Items.Len())
	}

	bulbasaur, ok := registry.Species.TryGet(1)
	if !ok {
		t.Fatal("bulbasaur missing")
	}
	if bulbasaur.Types.Primary != core.TYPE_GRASS || !bulbasaur.Types.Has(core.TYPE_POISON) {
		t.Fatalf("bulbasaur types wrong: %+v", bulbasaur.Types)
	}
	if bulbasaur.Training.Growth != core.GROWTH_MEDIUM_SLOW || bulbasaur.Breeding.Gender == nil || *bulbasaur.Breeding.Gender != 87 {
		t.Fatal("bulbasaur training or breeding data wrong")
	}

	shock, ok := registry.Moves.TryGet("thunder-shock")
	if !ok {
		t.Fatal("thunder shock missing")
	}
	if shock.Category != core.CATEGORY_SPECIAL || shock.Usages() != 2 {
		t.Fatalf("thunder shock parsed wrong: %+v", shock)
	}
	if child := shock.Usage[1].Children[0]; child.Ailment != core.AILMENT_PARALYSIS || child.Length == nil || !child.Length.Permanent {
		t.Fatalf("thunder shock ailment parsed wrong: %+v", child)
	}

	bike, ok := registry.Items.TryGet("bicycle")
	if !ok || bike.StackSize() != 1 || bike.Usage.Consumes() {
		t.Fatal("bicycle parsed wrong")
	}
}

func TestLoadMissingFiles(t *testing.T) {
	files := testFiles()
	delete(files, "data/moves.json")
	delete(files, "data/items.json")

	_, err := Load(files, "data")
	if err == nil {
		t.Fatal("load succeeded without move and item data")
	}
	if !strings.Contains(err.Error(), "moves.json") || !strings.Contains(err.Error(), "items.json") {
		t.Fatalf("every missing file should be reported: %v", err)
	}
}

func TestLoadBadJSON(t *testing.T) {
	files := testFiles()
	files["data/moves.json"] = &fstest.MapFile{Data: []byte(`[{"id": "tackle", "category": "sideways"}]`)}

	if _, err := Load(files, "data"); err == nil {
		t.Fatal("invalid move category was accepted")
	}
}

func TestLoadSpeciesCSV(t *testing.T) {
	files := testFiles()
	files["data/species.csv"] = &fstest.MapFile{Data: []byte(
		"PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\n" +
			"1,Bulbasaur,Grass,Poison,50,50,50,70,70,50\n" +
			"25,Pikachu,Electric,,35,55,40,50,50,90\n",
	)}

	registry, err := Load(files, "data")
	if err != nil {
		t.Fatal(err)
	}

	bulbasaur, _ := registry.Species.TryGet(1)
	if bulbasaur.Base.HP != 50 || bulbasaur.Base.SpAttack != 70 {
		t.Fatalf("csv did not override base stats: %+v", bulbasaur.Base)
	}
	if len(bulbasaur.Learnset) != 2 {
		t.Fatal("csv override lost the learnset")
	}

	pikachu, ok := registry.Species.TryGet(25)
	if !ok {
		t.Fatal("species only in the csv was not added")
	}
	if pikachu.Types.Secondary != nil || pikachu.Base.Speed != 90 {
		t.Fatalf("pikachu parsed wrong: %+v", pikachu)
	}
}

func TestLoadSpeciesCSVErrors(t *testing.T) {
	tests := map[string]string{
		"bad number": "1x,Bulbasaur,Grass,Poison,45,49,49,65,65,45\n",
		"bad type":   "1,Bulbasaur,Leaf,,45,49,49,65,65,45\n",
		"stat range": "1,Bulbasaur,Grass,,300,49,49,65,65,45\n",
		"columns":    "1,Bulbasaur,Grass\n",
	}

	for name, row := range tests {
		data := "PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\n" + row
		if _, err := LoadSpeciesCSV([]byte(data)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
