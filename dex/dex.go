// Package dex holds the generic registry used for every kind of static game data (species, moves, items).
// A Dex maps an entry's identifier to the entry itself and always keeps a reserved "unknown" entry
// that lookups fall back to.
package dex

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/go-logr/logr"
	"golang.org/x/text/cases"
)

var ErrMissingUnknown = errors.New("dex does not contain its unknown entry")

var internalLogger = logr.Discard()

func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("dex")
}

// Entry is anything that can be stored inside of a Dex.
type Entry[ID comparable] interface {
	EntryID() ID
	EntryName() string
}

// Dex is a keyed lookup table from an entry's ID to its static definition.
// A Dex is built once at load time and should be treated as read-only while entries borrowed from it are in use.
type Dex[ID comparable, T Entry[ID]] struct {
	entries map[ID]*T
	unknown ID
}

// New creates a Dex from a flat list of entries. unknown is the reserved ID every lookup falls back to.
func New[ID comparable, T Entry[ID]](unknown ID, entries ...T) *Dex[ID, T] {
	d := &Dex[ID, T]{
		entries: make(map[ID]*T, len(entries)),
		unknown: unknown,
	}

	for _, entry := range entries {
		d.Insert(entry)
	}

	return d
}

// TryGet gets an entry from the Dex without falling back to the unknown entry.
func (d *Dex[ID, T]) TryGet(id ID) (*T, bool) {
	if d == nil {
		return nil, false
	}

	entry, ok := d.entries[id]
	return entry, ok
}

// Unknown returns the Dex's unknown entry, or nil if it was never inserted.
func (d *Dex[ID, T]) Unknown() *T {
	if d == nil {
		return nil
	}

	entry, ok := d.TryGet(d.unknown)
	if !ok {
		internalLogger.Info("dex has no unknown entry", "unknown_id", d.unknown)
		return nil
	}

	return entry
}

// Get gets an entry from the Dex, returning the unknown entry if the id isn't present.
// Callers that need to know whether the lookup failed must use TryGet.
func (d *Dex[ID, T]) Get(id ID) *T {
	if entry, ok := d.TryGet(id); ok {
		return entry
	}

	internalLogger.V(1).Info("falling back to unknown entry", "id", id)
	return d.Unknown()
}

// TryGetNamed finds an entry by its name, ignoring case.
func (d *Dex[ID, T]) TryGetNamed(name string) (*T, bool) {
	if d == nil {
		return nil, false
	}

	folder := cases.Fold()
	folded := folder.String(name)
	for _, entry := range d.entries {
		if folder.String((*entry).EntryName()) == folded {
			return entry, true
		}
	}

	return nil, false
}

// Insert adds an entry to the Dex. If an entry with the same ID already existed it is replaced and returned.
// Inserting into a nil Dex does nothing.
func (d *Dex[ID, T]) Insert(entry T) (*T, bool) {
	if d == nil {
		return nil, false
	}
	if d.entries == nil {
		d.entries = make(map[ID]*T)
	}

	id := entry.EntryID()
	old, replaced := d.entries[id]
	d.entries[id] = &entry

	return old, replaced
}

// Remove deletes an entry and returns it. The unknown entry can't be removed.
func (d *Dex[ID, T]) Remove(id ID) (*T, bool) {
	if d == nil || id == d.unknown {
		return nil, false
	}

	old, ok := d.entries[id]
	if ok {
		delete(d.entries, id)
	}

	return old, ok
}

func (d *Dex[ID, T]) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

func (d *Dex[ID, T]) IsEmpty() bool {
	return d.Len() == 0
}

func (d *Dex[ID, T]) UnknownID() ID {
	return d.unknown
}

// HasUnknown reports whether the Dex contains its reserved unknown entry.
func (d *Dex[ID, T]) HasUnknown() bool {
	if d == nil {
		return false
	}

	_, ok := d.TryGet(d.unknown)
	return ok
}

// Validate returns ErrMissingUnknown if the unknown entry is missing.
func (d *Dex[ID, T]) Validate() error {
	if d == nil {
		return ErrMissingUnknown
	}

	if !d.HasUnknown() {
		return fmt.Errorf("%w: %v", ErrMissingUnknown, d.unknown)
	}

	return nil
}

// All iterates over every entry in the Dex in no particular order.
func (d *Dex[ID, T]) All() iter.Seq2[ID, *T] {
	if d == nil {
		return func(func(ID, *T) bool) {}
	}
	return maps.All(d.entries)
}

// MarshalJSON encodes the Dex as a flat list of entries.
func (d *Dex[ID, T]) MarshalJSON() ([]byte, error) {
	list := make([]T, 0, d.Len())
	for _, entry := range d.All() {
		list = append(list, *entry)
	}

	return json.Marshal(list)
}

// UnmarshalJSON decodes a flat list of entries into the Dex. The unknown ID has to be set beforehand (see New).
func (d *Dex[ID, T]) UnmarshalJSON(data []byte) error {
	list := make([]T, 0)
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	d.entries = make(map[ID]*T, len(list))
	for _, entry := range list {
		d.Insert(entry)
	}

	internalLogger.V(1).Info("decoded dex", "count", len(list))
	return nil
}
