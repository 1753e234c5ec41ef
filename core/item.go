package core

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type ItemID string

const (
	ITEM_UNKNOWN ItemID = "unknown"

	DEFAULT_STACK_SIZE = 999
)

type ItemCategory uint8

const (
	ITEM_CATEGORY_ITEMS ItemCategory = iota
	ITEM_CATEGORY_KEY_ITEMS
	ITEM_CATEGORY_POKEBALLS
)

var itemCategoryNames = [...]string{"items", "key-items", "pokeballs"}

func (c ItemCategory) String() string {
	if int(c) < len(itemCategoryNames) {
		return itemCategoryNames[c]
	}
	return fmt.Sprintf("ItemCategory(%d)", c)
}

func (c ItemCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ItemCategory) UnmarshalText(text []byte) error {
	index := lo.IndexOf(itemCategoryNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown item category: %q", text)
	}

	*c = ItemCategory(index)
	return nil
}

type ItemCondition uint8

const (
	// The target pokemon has to be fainted
	CONDITION_FAINTED ItemCondition = iota
)

var conditionNames = [...]string{"fainted"}

func (c ItemCondition) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return fmt.Sprintf("ItemCondition(%d)", c)
}

func (c ItemCondition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ItemCondition) UnmarshalText(text []byte) error {
	index := lo.IndexOf(conditionNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown item condition: %q", text)
	}

	*c = ItemCondition(index)
	return nil
}

type ItemUsageKind uint8

const (
	ITEM_USAGE_NONE ItemUsageKind = iota
	ITEM_USAGE_ACTIONS
	ITEM_USAGE_SCRIPT
	ITEM_USAGE_POKEBALL
)

var itemUsageNames = [...]string{"none", "actions", "script", "pokeball"}

func (k ItemUsageKind) String() string {
	if int(k) < len(itemUsageNames) {
		return itemUsageNames[k]
	}
	return fmt.Sprintf("ItemUsageKind(%d)", k)
}

func (k ItemUsageKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ItemUsageKind) UnmarshalText(text []byte) error {
	index := lo.IndexOf(itemUsageNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown item usage: %q", text)
	}

	*k = ItemUsageKind(index)
	return nil
}

type ItemActionKind uint8

const (
	ACTION_CURE ItemActionKind = iota
	ACTION_HEAL
)

var actionNames = [...]string{"cure", "heal"}

func (k ItemActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("ItemActionKind(%d)", k)
}

func (k ItemActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ItemActionKind) UnmarshalText(text []byte) error {
	index := lo.IndexOf(actionNames[:], strings.ToLower(string(text)))
	if index < 0 {
		return fmt.Errorf("unknown item action: %q", text)
	}

	*k = ItemActionKind(index)
	return nil
}

// ItemAction is one step of using an item on a pokemon.
// A cure with no Ailment cures any ailment.
type ItemAction struct {
	Kind    ItemActionKind `json:"kind"`
	Ailment *Ailment       `json:"ailment,omitempty"`
	Amount  Health         `json:"amount,omitempty"`
}

func CureAction(ailment *Ailment) ItemAction {
	return ItemAction{Kind: ACTION_CURE, Ailment: ailment}
}

func HealAction(amount Health) ItemAction {
	return ItemAction{Kind: ACTION_HEAL, Amount: amount}
}

type ItemUsage struct {
	Conditions []ItemCondition `json:"conditions,omitempty"`
	Kind       ItemUsageKind   `json:"kind"`
	Actions    []ItemAction    `json:"actions,omitempty"`
	// nil consumes the item
	Consume *bool `json:"consume,omitempty"`
}

// Consumes reports if a use of the item removes it from the bag
func (u ItemUsage) Consumes() bool {
	return u.Consume == nil || *u.Consume
}

type Item struct {
	ID          ItemID       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    ItemCategory `json:"category"`
	Price       uint32       `json:"price"`
	// nil is DEFAULT_STACK_SIZE, 0 and 1 mean the item doesn't stack
	Stackable *uint16   `json:"stackable,omitempty"`
	Usage     ItemUsage `json:"usage"`
}

func (i Item) EntryID() ItemID   { return i.ID }
func (i Item) EntryName() string { return i.Name }

// StackSize is the most of this item that fits in one stack
func (i Item) StackSize() uint16 {
	if i.Stackable == nil {
		return DEFAULT_STACK_SIZE
	}

	return max(*i.Stackable, 1)
}

func UnknownItem() Item {
	return Item{
		ID:          ITEM_UNKNOWN,
		Name:        "Unknown",
		Description: "An unknown item",
	}
}
