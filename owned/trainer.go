package owned

import (
	"math/rand/v2"

	"github.com/nathanieltooley/klefki/core"
)

type Money = uint32

// SavedTrainer is everything a player owns, as it is persisted
type SavedTrainer struct {
	Name  string     `json:"name"`
	Party SavedParty `json:"party"`
	Bag   SavedBag   `json:"bag"`
	Money Money      `json:"money"`
}

type Trainer struct {
	Name  string
	Party Party
	Bag   *Bag
	Money Money
}

func (t SavedTrainer) Init(rng *rand.Rand, registry *core.Registry) *Trainer {
	return &Trainer{
		Name:  t.Name,
		Party: t.Party.Init(rng, registry),
		Bag:   t.Bag.Init(registry.Items),
		Money: t.Money,
	}
}

func (t *Trainer) Uninit() SavedTrainer {
	return SavedTrainer{
		Name:  t.Name,
		Party: t.Party.Uninit(),
		Bag:   t.Bag.Uninit(),
		Money: t.Money,
	}
}

// Buy takes the price of count items out of the trainer's money and puts them in the bag.
// Returns false if the trainer can't afford it.
func (t *Trainer) Buy(item *core.Item, count uint32) bool {
	cost := uint64(item.Price) * uint64(count)
	if cost > uint64(t.Money) {
		return false
	}

	t.Money -= Money(cost)
	t.Bag.Insert(NewItemStack(item, count))
	return true
}
