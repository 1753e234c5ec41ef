package owned

import (
	"iter"
	"slices"

	"github.com/nathanieltooley/klefki/core"
	"github.com/samber/lo"
)

const MOVESET_SIZE = 4

// MoveSet holds the moves a pokemon knows, never more than its capacity
type MoveSet struct {
	moves    []OwnedMove
	capacity int
}

func NewMoveSet(moves ...OwnedMove) MoveSet {
	set := MoveSet{capacity: MOVESET_SIZE}
	for _, m := range moves {
		if set.IsFull() {
			internalLogger.Info("move set is full, dropping move", "move", m.Move.ID)
			continue
		}
		set.moves = append(set.moves, m)
	}

	return set
}

// InitMoveSet resolves saved moves, skipping moves that no longer exist
func InitMoveSet(saved []SavedMove, movedex *core.Movedex) MoveSet {
	return NewMoveSet(lo.FilterMap(saved, func(m SavedMove, _ int) (OwnedMove, bool) {
		return m.Init(movedex)
	})...)
}

func (s MoveSet) Len() int {
	return len(s.moves)
}

func (s MoveSet) IsEmpty() bool {
	return len(s.moves) == 0
}

func (s MoveSet) Capacity() int {
	if s.capacity == 0 {
		return MOVESET_SIZE
	}
	return s.capacity
}

func (s MoveSet) IsFull() bool {
	return len(s.moves) >= s.Capacity()
}

// Get returns the move at index, bounds checked
func (s *MoveSet) Get(index int) (*OwnedMove, bool) {
	if index < 0 || index >= len(s.moves) {
		return nil, false
	}

	return &s.moves[index], true
}

// Add puts a move into the set. A full set only takes the move if replace points to an existing slot.
func (s *MoveSet) Add(replace *int, move *core.Move) bool {
	owned := NewOwnedMove(move)
	if !s.IsFull() {
		s.moves = append(s.moves, owned)
		return true
	}

	if replace == nil {
		return false
	}

	slot, ok := s.Get(*replace)
	if !ok {
		return false
	}

	*slot = owned
	return true
}

func (s MoveSet) Contains(id core.MoveID) bool {
	return slices.ContainsFunc(s.moves, func(m OwnedMove) bool {
		return m.Move.ID == id
	})
}

func (s *MoveSet) All() iter.Seq2[int, *OwnedMove] {
	return func(yield func(int, *OwnedMove) bool) {
		for i := range s.moves {
			if !yield(i, &s.moves[i]) {
				return
			}
		}
	}
}

func (s MoveSet) Uninit() []SavedMove {
	return lo.Map(s.moves, func(m OwnedMove, _ int) SavedMove {
		return m.Uninit()
	})
}
