package pantry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/pantry/date"
)

// Inventory owns the set of storages, the current storage and the navigation history.
//
// The current storage and the history are kept as normalized storage names,
// never as pointers: they are resolved through the storage map on use.
type Inventory struct {
	ledgers map[string]*Ledger
	current string   // normalized name, "" when no storage is selected
	history []string // previous values of current, most recent last
}

// NewInventory creates an inventory with no storage.
func NewInventory() *Inventory {
	return &Inventory{ledgers: make(map[string]*Ledger)}
}

// CreateLedger adds a new empty storage.
func (inv *Inventory) CreateLedger(name string) (*Ledger, error) {
	key := normalize(name)
	if key == "" {
		return nil, ErrInvalidName
	}
	if existing, ok := inv.ledgers[key]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, existing.Name())
	}
	l := NewLedger(name)
	inv.ledgers[key] = l
	return l, nil
}

// RemoveLedger deletes a storage and reports whether it existed.
//
// If it was the current storage, no storage is selected anymore. It is also
// purged from the navigation history.
func (inv *Inventory) RemoveLedger(name string) bool {
	key := normalize(name)
	if _, ok := inv.ledgers[key]; !ok {
		return false
	}
	delete(inv.ledgers, key)
	if inv.current == key {
		inv.current = ""
	}
	inv.history = slices.DeleteFunc(inv.history, func(k string) bool { return k == key })
	// Collapse consecutive duplicates left behind by the purge, GoBack must
	// always move.
	inv.history = slices.Compact(inv.history)
	for n := len(inv.history); n > 0 && inv.history[n-1] == inv.current; n-- {
		inv.history = inv.history[:n-1]
	}
	return true
}

// Ledger returns the storage named 'name'.
func (inv *Inventory) Ledger(name string) (*Ledger, bool) {
	l, ok := inv.ledgers[normalize(name)]
	return l, ok
}

// Ledgers returns all storages sorted by normalized name.
func (inv *Inventory) Ledgers() []*Ledger {
	keys := make([]string, 0, len(inv.ledgers))
	for k := range inv.ledgers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]*Ledger, 0, len(keys))
	for _, k := range keys {
		out = append(out, inv.ledgers[k])
	}
	return out
}

// FindLedgers returns the storages whose name contains 'fragment', case-insensitively.
func (inv *Inventory) FindLedgers(fragment string) []*Ledger {
	fragment = normalize(fragment)
	var out []*Ledger
	for _, l := range inv.Ledgers() {
		if strings.Contains(l.Key(), fragment) {
			out = append(out, l)
		}
	}
	return out
}

// SetCurrent selects the storage 'name' and reports whether it exists.
//
// The previously selected storage, if any, is pushed onto the history. An
// unknown name leaves the selection and the history unchanged.
func (inv *Inventory) SetCurrent(name string) bool {
	key := normalize(name)
	if _, ok := inv.ledgers[key]; !ok {
		return false
	}
	inv.history = append(inv.history, inv.current)
	inv.current = key
	return true
}

// GoBack restores the storage selected before the last SetCurrent.
func (inv *Inventory) GoBack() error {
	if len(inv.history) == 0 {
		return ErrEmptyHistory
	}
	last := len(inv.history) - 1
	inv.current, inv.history = inv.history[last], inv.history[:last]
	return nil
}

// HistoryLen returns the number of GoBack calls that would succeed.
func (inv *Inventory) HistoryLen() int { return len(inv.history) }

// Current returns the selected storage.
func (inv *Inventory) Current() (*Ledger, error) {
	if inv.current == "" {
		return nil, ErrNoCurrentLedger
	}
	l, ok := inv.ledgers[inv.current]
	if !ok {
		return nil, ErrNoCurrentLedger
	}
	return l, nil
}

// Stored is an ingredient batch tagged with the storage holding it.
type Stored struct {
	Storage string
	Ingredient
}

// Find returns the batches matching 'fragment' in every storage.
func (inv *Inventory) Find(fragment string) []Stored {
	return inv.fold(func(l *Ledger) []Ingredient { return l.Find(fragment) })
}

// Expired returns the expired batches of every storage.
func (inv *Inventory) Expired(today date.Date) []Stored {
	return inv.fold(func(l *Ledger) []Ingredient { return l.Expired(today) })
}

// RemoveExpired deletes the expired batches of every storage and returns them.
func (inv *Inventory) RemoveExpired(today date.Date) []Stored {
	return inv.fold(func(l *Ledger) []Ingredient { return l.RemoveExpired(today) })
}

// ExpiringWithin returns the batches of every storage expiring in the next 'days' days.
func (inv *Inventory) ExpiringWithin(today date.Date, days int) []Stored {
	return inv.fold(func(l *Ledger) []Ingredient { return l.ExpiringWithin(today, days) })
}

// TotalValue returns the value of every storage.
func (inv *Inventory) TotalValue() Money {
	total := Money{}
	for _, l := range inv.ledgers {
		total = total.Add(l.TotalValue())
	}
	return total
}

// fold concatenates f over every storage, in storage order.
func (inv *Inventory) fold(f func(*Ledger) []Ingredient) []Stored {
	var out []Stored
	for _, l := range inv.Ledgers() {
		for _, ing := range f(l) {
			out = append(out, Stored{Storage: l.Name(), Ingredient: ing})
		}
	}
	return out
}

// Value returns the value of a list of stored batches.
func Value(list []Stored) Money {
	total := Money{}
	for _, s := range list {
		total = total.Add(s.Value())
	}
	return total
}

func (inv *Inventory) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	if l, err := inv.Current(); err == nil {
		w.Append("current", l.Name())
	}
	w.Append("value", inv.TotalValue())
	w.Append("storages", inv.Ledgers())
	return w.MarshalJSON()
}
