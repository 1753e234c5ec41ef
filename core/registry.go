package core

import (
	"fmt"

	"github.com/nathanieltooley/klefki/dex"
)

type (
	Pokedex = dex.Dex[SpeciesID, Species]
	Movedex = dex.Dex[MoveID, Move]
	Itemdex = dex.Dex[ItemID, Item]
)

// Registry bundles every Dex needed to resolve saved data.
// It is read-only after construction and can be shared between goroutines.
type Registry struct {
	Species *Pokedex
	Moves   *Movedex
	Items   *Itemdex
}

// NewRegistry checks that every Dex has its unknown entry
func NewRegistry(species *Pokedex, moves *Movedex, items *Itemdex) (*Registry, error) {
	if err := species.Validate(); err != nil {
		return nil, fmt.Errorf("species: %w", err)
	}
	if err := moves.Validate(); err != nil {
		return nil, fmt.Errorf("moves: %w", err)
	}
	if err := items.Validate(); err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}

	internalLogger.Info("Created registry", "species", species.Len(), "moves", moves.Len(), "items", items.Len())

	return &Registry{
		Species: species,
		Moves:   moves,
		Items:   items,
	}, nil
}

// NewPokedex creates a species Dex that already holds UnknownSpecies.
// A given entry with the unknown ID replaces the placeholder.
func NewPokedex(species ...Species) *Pokedex {
	return dex.New(SPECIES_UNKNOWN, append([]Species{UnknownSpecies()}, species...)...)
}

func NewMovedex(moves ...Move) *Movedex {
	return dex.New(MOVE_UNKNOWN, append([]Move{UnknownMove()}, moves...)...)
}

func NewItemdex(items ...Item) *Itemdex {
	return dex.New(ITEM_UNKNOWN, append([]Item{UnknownItem()}, items...)...)
}
