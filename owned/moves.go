package owned

import (
	"github.com/nathanieltooley/klefki/core"
)

// SavedMove is a move slot as it is persisted. A nil PP means the move has full PP.
type SavedMove struct {
	ID core.MoveID `json:"id"`
	PP *uint8      `json:"pp,omitempty"`
}

func NewSavedMove(id core.MoveID) SavedMove {
	return SavedMove{ID: id}
}

// Init resolves the move against the movedex, returns false if the move no longer exists.
func (m SavedMove) Init(movedex *core.Movedex) (OwnedMove, bool) {
	move, ok := movedex.TryGet(m.ID)
	if !ok {
		internalLogger.V(1).Info("could not find move", "move", m.ID)
		return OwnedMove{}, false
	}

	owned := NewOwnedMove(move)
	if m.PP != nil {
		owned.PP = min(*m.PP, move.PP)
	}

	return owned, true
}

func (m SavedMove) IsEmpty() bool {
	return m.PP != nil && *m.PP == 0
}

// Restore adds PP to the move. nil restores it fully.
// Saved moves don't know their max PP, it gets clamped on Init.
func (m *SavedMove) Restore(amount *uint8) {
	if amount == nil {
		m.PP = nil
		return
	}

	if m.PP != nil {
		pp := uint8(min(int(*m.PP)+int(*amount), 255))
		m.PP = &pp
	}
}

// OwnedMove is a move slot of a usable pokemon
type OwnedMove struct {
	Move *core.Move
	PP   uint8
}

func NewOwnedMove(move *core.Move) OwnedMove {
	return OwnedMove{Move: move, PP: move.PP}
}

func (m OwnedMove) Uninit() SavedMove {
	pp := m.PP
	return SavedMove{ID: m.Move.ID, PP: &pp}
}

func (m OwnedMove) IsEmpty() bool {
	return m.PP == 0
}

func (m OwnedMove) MaxPP() uint8 {
	return m.Move.PP
}

// Restore adds PP to the move, clamped to its max. nil restores it fully.
func (m *OwnedMove) Restore(amount *uint8) {
	if amount == nil {
		m.PP = m.Move.PP
		return
	}

	m.PP = uint8(min(int(m.PP)+int(*amount), int(m.Move.PP)))
}

// TryUse takes one PP from the move. PP never drops below zero.
func (m *OwnedMove) TryUse() bool {
	if m.PP == 0 {
		return false
	}

	m.PP--
	return true
}
