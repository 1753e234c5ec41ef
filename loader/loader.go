// Package loader builds a core.Registry from data files.
//
// The data directory holds species.json, moves.json and items.json, each a flat JSON array of entries.
// An optional species.csv with the columns
//
//	PokedexNumber, Name, Type1, Type2, HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed
//
// overrides the base stats and types of species from species.json and adds any species it doesn't have.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/nathanieltooley/klefki/core"
	"github.com/samber/lo"
)

const (
	SPECIES_FILE     = "species.json"
	MOVES_FILE       = "moves.json"
	ITEMS_FILE       = "items.json"
	SPECIES_CSV_FILE = "species.csv"
)

// Load reads every data file in dir concurrently and builds a registry from them.
// Every file error is collected and returned together.
func Load(files fs.FS, dir string) (*core.Registry, error) {
	var (
		wg       sync.WaitGroup
		species  []core.Species
		csvStats []core.Species
		moves    []core.Move
		items    []core.Item
	)

	errChan := make(chan error, 4)

	wg.Add(4)
	go func() {
		defer wg.Done()

		loaded, err := loadJSON[core.Species](files, path.Join(dir, SPECIES_FILE))
		if err != nil {
			errChan <- err
			return
		}
		species = loaded
	}()
	go func() {
		defer wg.Done()

		loaded, err := loadJSON[core.Move](files, path.Join(dir, MOVES_FILE))
		if err != nil {
			errChan <- err
			return
		}
		moves = loaded
	}()
	go func() {
		defer wg.Done()

		loaded, err := loadJSON[core.Item](files, path.Join(dir, ITEMS_FILE))
		if err != nil {
			errChan <- err
			return
		}
		items = loaded
	}()
	go func() {
		defer wg.Done()

		csvBytes, err := fs.ReadFile(files, path.Join(dir, SPECIES_CSV_FILE))
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		if err != nil {
			errChan <- err
			return
		}

		loaded, err := LoadSpeciesCSV(csvBytes)
		if err != nil {
			errChan <- fmt.Errorf("%s: %w", SPECIES_CSV_FILE, err)
			return
		}
		csvStats = loaded
	}()

	wg.Wait()
	close(errChan)

	errs := lo.ChannelToSlice(errChan)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	species = mergeSpecies(species, csvStats)

	registry, err := core.NewRegistry(core.NewPokedex(species...), core.NewMovedex(moves...), core.NewItemdex(items...))
	if err != nil {
		return nil, err
	}

	internalLogger.Info("Loaded registry", "species", registry.Species.Len(), "moves", registry.Moves.Len(), "items", registry.Items.Len())
	return registry, nil
}

func loadJSON[T any](files fs.FS, filePath string) ([]T, error) {
	data, err := fs.ReadFile(files, filePath)
	if err != nil {
		return nil, err
	}

	entries := make([]T, 0)
	if err := json.Unmarshal(data, &entries); err != nil {
		internalLogger.Error(err, "Couldn't unmarshal data file", "file", filePath)
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	internalLogger.V(1).Info("Loaded data file", "file", filePath, "count", len(entries))
	return entries, nil
}

// mergeSpecies applies csv stats on top of the json species, keeping json order and appending new species
func mergeSpecies(species []core.Species, csvStats []core.Species) []core.Species {
	if len(csvStats) == 0 {
		return species
	}

	index := lo.SliceToMap(lo.Range(len(species)), func(i int) (core.SpeciesID, int) {
		return species[i].ID, i
	})

	for _, stats := range csvStats {
		i, ok := index[stats.ID]
		if !ok {
			internalLogger.V(1).Info("Adding species from csv", "id", stats.ID, "name", stats.Name)
			index[stats.ID] = len(species)
			species = append(species, stats)
			continue
		}

		species[i].Base = stats.Base
		species[i].Types = stats.Types
		if species[i].Name == "" {
			species[i].Name = stats.Name
		}
	}

	return species
}
