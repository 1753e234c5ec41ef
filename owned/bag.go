package owned

import (
	"iter"
	"slices"

	"github.com/nathanieltooley/klefki/core"
	"github.com/samber/lo"
)

type SavedBag []SavedItemStack

// Init resolves every stack, dropping items that no longer exist.
// Stacks are re-inserted so oversized saved stacks get split.
func (b SavedBag) Init(itemdex *core.Itemdex) *Bag {
	bag := &Bag{}
	for _, saved := range b {
		if stack, ok := saved.Init(itemdex); ok {
			bag.Insert(stack)
		}
	}

	return bag
}

// Bag stores item stacks in insertion order. Stacks are addressed by their index,
// which stays valid until a stack is emptied and removed.
type Bag struct {
	stacks []ItemStack
}

func (b *Bag) Uninit() SavedBag {
	return lo.Map(b.stacks, func(s ItemStack, _ int) SavedItemStack {
		return s.Uninit()
	})
}

func (b *Bag) Len() int {
	return len(b.stacks)
}

// Get returns the stack at index, bounds checked
func (b *Bag) Get(index int) (*ItemStack, bool) {
	if index < 0 || index >= len(b.stacks) {
		return nil, false
	}

	return &b.stacks[index], true
}

// Position finds the first stack holding the item
func (b *Bag) Position(id core.ItemID) (int, bool) {
	index := slices.IndexFunc(b.stacks, func(s ItemStack) bool {
		return s.Item.ID == id
	})

	return index, index >= 0
}

// Count is how many of the item are in the bag across every stack
func (b *Bag) Count(id core.ItemID) uint64 {
	return lo.SumBy(b.stacks, func(s ItemStack) uint64 {
		if s.Item.ID != id {
			return 0
		}
		return uint64(s.Count)
	})
}

// Insert adds a stack to the bag. It fills existing stacks of the same item first,
// then appends the overflow as new stacks no bigger than the item's stack size.
// Returns the index of the last stack that received items.
func (b *Bag) Insert(stack ItemStack) int {
	last := -1
	if stack.Item == nil || stack.Count == 0 {
		return last
	}

	for i := range b.stacks {
		if b.stacks[i].Item.ID != stack.Item.ID || b.stacks[i].IsFull() {
			continue
		}

		overflow := b.stacks[i].Insert(stack)
		last = i
		if overflow == nil {
			return last
		}
		stack = *overflow
	}

	size := stack.Size()
	for stack.Count > 0 {
		b.stacks = append(b.stacks, stack.Take(size))
		last = len(b.stacks) - 1
	}

	return last
}

// Use takes one of the item out of the bag if the item is consumable.
// Returns false if the bag has none.
func (b *Bag) Use(id core.ItemID) bool {
	index, ok := b.Position(id)
	if !ok {
		return false
	}

	stack := &b.stacks[index]
	if !stack.TryUse(stack.Item.Usage.Consumes()) {
		return false
	}

	b.removeIfEmpty(index)
	return true
}

// UseOn uses an item from the bag on a pokemon, only taking it out of the bag if the pokemon accepted it
func (b *Bag) UseOn(id core.ItemID, pokemon *OwnedPokemon) bool {
	index, ok := b.Position(id)
	if !ok || b.stacks[index].IsEmpty() {
		return false
	}

	if !pokemon.UseItem(b.stacks[index].Item) {
		return false
	}

	return b.Use(id)
}

// Take removes up to count of the item, from the last stacks first
func (b *Bag) Take(id core.ItemID, count uint32) (ItemStack, bool) {
	index, ok := b.Position(id)
	if !ok {
		return ItemStack{}, false
	}

	taken := ItemStack{Item: b.stacks[index].Item}
	for i := len(b.stacks) - 1; i >= 0 && taken.Count < count; i-- {
		if b.stacks[i].Item.ID != id {
			continue
		}

		part := b.stacks[i].Take(count - taken.Count)
		taken.Count += part.Count
		b.removeIfEmpty(i)
	}

	return taken, true
}

// TryTake removes exactly count of the item, or nothing if the bag doesn't hold enough
func (b *Bag) TryTake(id core.ItemID, count uint32) (ItemStack, bool) {
	if b.Count(id) < uint64(count) {
		return ItemStack{}, false
	}

	return b.Take(id, count)
}

func (b *Bag) All() iter.Seq2[int, *ItemStack] {
	return func(yield func(int, *ItemStack) bool) {
		for i := range b.stacks {
			if !yield(i, &b.stacks[i]) {
				return
			}
		}
	}
}

func (b *Bag) removeIfEmpty(index int) {
	if b.stacks[index].IsEmpty() {
		b.stacks = slices.Delete(b.stacks, index, index+1)
	}
}
