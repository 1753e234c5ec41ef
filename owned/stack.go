package owned

import (
	"fmt"

	"github.com/nathanieltooley/klefki/core"
)

type SavedItemStack struct {
	Item  core.ItemID `json:"item"`
	Count uint32      `json:"count"`
}

// Init resolves the stack, returns false if the item no longer exists
func (s SavedItemStack) Init(itemdex *core.Itemdex) (ItemStack, bool) {
	item, ok := itemdex.TryGet(s.Item)
	if !ok {
		internalLogger.Info("could not find item", "item", s.Item)
		return ItemStack{}, false
	}

	return ItemStack{Item: item, Count: s.Count}, true
}

type ItemStack struct {
	Item  *core.Item
	Count uint32
}

func NewItemStack(item *core.Item, count uint32) ItemStack {
	return ItemStack{Item: item, Count: count}
}

func (s ItemStack) Uninit() SavedItemStack {
	return SavedItemStack{Item: s.Item.ID, Count: s.Count}
}

func (s ItemStack) String() string {
	return fmt.Sprintf("%s x%d", s.Item.Name, s.Count)
}

func (s ItemStack) IsEmpty() bool {
	return s.Count == 0
}

func (s ItemStack) Size() uint32 {
	return uint32(s.Item.StackSize())
}

func (s ItemStack) IsFull() bool {
	return s.Count >= s.Size()
}

// TryUse takes one item from the stack if consume is set. Returns false if the stack is empty.
func (s *ItemStack) TryUse(consume bool) bool {
	if s.Count == 0 {
		return false
	}

	if consume {
		s.Count--
	}

	return true
}

// Add increases the count without any stack size limit, saturating at the max count
func (s *ItemStack) Add(count uint32) {
	s.Count = uint32(min(uint64(s.Count)+uint64(count), uint64(^uint32(0))))
}

// Take removes up to count items and returns them as a new stack
func (s *ItemStack) Take(count uint32) ItemStack {
	taken := min(count, s.Count)
	s.Count -= taken

	return ItemStack{Item: s.Item, Count: taken}
}

// TryTake removes exactly count items, or nothing if there aren't enough
func (s *ItemStack) TryTake(count uint32) (ItemStack, bool) {
	if count > s.Count {
		return ItemStack{}, false
	}

	return s.Take(count), true
}

// Insert merges another stack of the same item into this one, up to the item's stack size.
// Whatever doesn't fit is returned as a separate stack, nil if everything fit.
func (s *ItemStack) Insert(other ItemStack) *ItemStack {
	if other.Item == nil || s.Item == nil || other.Item.ID != s.Item.ID {
		return &other
	}

	room := uint32(0)
	if !s.IsFull() {
		room = s.Size() - s.Count
	}

	moved := min(room, other.Count)
	s.Count += moved
	other.Count -= moved

	if other.Count == 0 {
		return nil
	}

	return &other
}
