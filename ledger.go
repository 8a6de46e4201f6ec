package pantry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/pantry/date"
)

// batchKey identifies a batch in a Ledger.
type batchKey struct {
	name   string // normalized
	expiry date.Date
}

// Ledger holds the ingredients of one storage.
//
// Ingredients are indexed by normalized name and expiry date: adding a batch
// that already exists merges it, while the same name with another expiry date
// is tracked as a distinct batch.
type Ledger struct {
	name    string
	entries map[batchKey]*Ingredient
}

// NewLedger creates an empty ledger for the storage 'name'.
func NewLedger(name string) *Ledger {
	return &Ledger{
		name:    strings.TrimSpace(name),
		entries: make(map[batchKey]*Ingredient),
	}
}

// Name returns the storage name as it was created.
func (l *Ledger) Name() string { return l.name }

// Key returns the normalized storage name.
func (l *Ledger) Key() string { return normalize(l.name) }

// Len returns the number of batches.
func (l *Ledger) Len() int { return len(l.entries) }

// Add stores 'ing' and reports whether it was merged into an existing batch.
//
// A batch with the same name and expiry but a different kind is rejected with
// ErrKindMismatch, the ledger is left untouched.
func (l *Ledger) Add(ing Ingredient) (merged bool, err error) {
	key := batchKey{ing.Key(), ing.Expiry}
	existing, ok := l.entries[key]
	if !ok {
		l.entries[key] = &ing
		return false, nil
	}
	if existing.Measurement.Kind() != ing.Measurement.Kind() {
		return false, fmt.Errorf("%w: %q is stored as %s in %q", ErrKindMismatch, existing.Name, existing.Measurement.Kind(), l.name)
	}
	m, err := Merge(*existing, ing)
	if err != nil {
		return false, err
	}
	*existing = m
	return true, nil
}

// Remove deletes every batch named 'name' and reports whether there was any.
func (l *Ledger) Remove(name string) bool {
	name = normalize(name)
	found := false
	for key := range l.entries {
		if key.name == name {
			delete(l.entries, key)
			found = true
		}
	}
	return found
}

// RemoveBatch deletes the batch with the given ID and returns it.
func (l *Ledger) RemoveBatch(id string) (Ingredient, bool) {
	for key, ing := range l.entries {
		if ing.ID == id {
			delete(l.entries, key)
			return *ing, true
		}
	}
	return Ingredient{}, false
}

// Get returns every batch named 'name', soonest expiry first.
func (l *Ledger) Get(name string) []Ingredient {
	name = normalize(name)
	return l.collect(func(i *Ingredient) bool { return i.Key() == name })
}

// List returns all batches.
func (l *Ledger) List() []Ingredient {
	return l.collect(func(*Ingredient) bool { return true })
}

// Find returns the batches whose name contains 'fragment', case-insensitively.
func (l *Ledger) Find(fragment string) []Ingredient {
	fragment = normalize(fragment)
	return l.collect(func(i *Ingredient) bool { return strings.Contains(i.Key(), fragment) })
}

// Expired returns the batches expired on 'today'.
func (l *Ledger) Expired(today date.Date) []Ingredient {
	return l.collect(func(i *Ingredient) bool { return i.Expired(today) })
}

// ExpiringWithin returns the batches not yet expired on 'today' that expire in the next 'days' days.
func (l *Ledger) ExpiringWithin(today date.Date, days int) []Ingredient {
	r := date.NewRange(today, days)
	return l.collect(func(i *Ingredient) bool { return r.Contains(i.Expiry) })
}

// RemoveExpired deletes the batches expired on 'today' and returns them.
func (l *Ledger) RemoveExpired(today date.Date) []Ingredient {
	expired := l.Expired(today)
	for _, ing := range expired {
		delete(l.entries, batchKey{ing.Key(), ing.Expiry})
	}
	return expired
}

// TotalValue returns the sum of all batch values.
func (l *Ledger) TotalValue() Money {
	total := Money{}
	for _, ing := range l.entries {
		total = total.Add(ing.Value())
	}
	return total
}

// collect returns copies of the matching batches sorted by name then expiry.
func (l *Ledger) collect(match func(*Ingredient) bool) []Ingredient {
	var out []Ingredient
	for _, ing := range l.entries {
		if match(ing) {
			out = append(out, *ing)
		}
	}
	sortIngredients(out)
	return out
}

func sortIngredients(list []Ingredient) {
	slices.SortFunc(list, func(a, b Ingredient) int {
		if c := strings.Compare(a.Key(), b.Key()); c != 0 {
			return c
		}
		switch {
		case a.Expiry.Before(b.Expiry):
			return -1
		case a.Expiry.After(b.Expiry):
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("storage", l.name)
	w.Append("value", l.TotalValue())
	ingredients := l.List()
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	w.Append("ingredients", ingredients)
	return w.MarshalJSON()
}
