package pantry

import (
	"math/rand/v2"

	"github.com/etnz/pantry/date"
)

type demoItem struct {
	name  string
	unit  Unit
	max   int // maximum amount in unit
	price int // maximum price per standard unit
}

var demoStorages = []struct {
	name  string
	items []demoItem
}{
	{"Fridge", []demoItem{
		{"Milk", L, 3, 2},
		{"Butter", G, 500, 12},
		{"Cream", DL, 5, 6},
		{"Cheese", G, 800, 25},
		{"Yoghurt", ML, 900, 4},
	}},
	{"Pantry", []demoItem{
		{"Flour", KG, 5, 2},
		{"Sugar", G, 900, 3},
		{"Olive oil", L, 2, 15},
		{"Rice", KG, 3, 4},
		{"Vinegar", ML, 750, 5},
	}},
	{"Freezer", []demoItem{
		{"Peas", G, 900, 6},
		{"Chicken", KG, 2, 14},
		{"Ice cream", L, 2, 9},
	}},
}

// DemoInventory builds an inventory with a few storages filled with random
// batches drawn from 'rng'. About a fifth of the batches are already expired
// on 'today'.
//
// The result only depends on the rng state and 'today', so a seeded source
// gives reproducible data.
func DemoInventory(rng *rand.Rand, today date.Date, currency string) *Inventory {
	inv := NewInventory()
	for _, s := range demoStorages {
		l, err := inv.CreateLedger(s.name)
		if err != nil {
			panic(err) // demo storages have distinct names
		}
		for _, item := range s.items {
			amount := Q(1 + rng.IntN(item.max))
			price := M(float64(1+rng.IntN(100*item.price))/100, currency)
			offset := rng.IntN(60) + 1
			if rng.IntN(5) == 0 {
				offset = -offset
			}
			ing, err := NewIngredient(item.name, MustMeasurement(amount, item.unit), price, today.Add(offset))
			if err != nil {
				panic(err) // demo items are valid by construction
			}
			if _, err := l.Add(ing); err != nil {
				panic(err)
			}
		}
	}
	return inv
}
