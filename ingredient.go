package pantry

import (
	"fmt"
	"strings"

	"github.com/etnz/pantry/date"
	"github.com/google/uuid"
)

// MaxUnitPrice is the highest accepted price per standard unit.
var MaxUnitPrice = Q(1000)

// Ingredient is one batch of an ingredient in a storage.
//
// Its UnitPrice is expressed per standard unit of its kind: per kilogram for
// mass, per liter for volume.
type Ingredient struct {
	ID          string
	Name        string
	Measurement Measurement
	UnitPrice   Money
	Expiry      date.Date
}

// NewIngredient returns a validated Ingredient with a fresh batch ID.
func NewIngredient(name string, m Measurement, unitPrice Money, expiry date.Date) (Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Ingredient{}, fmt.Errorf("%w: empty name", ErrInvalidIngredient)
	}
	if !m.unit.Known() {
		return Ingredient{}, fmt.Errorf("%w: %q has no unit", ErrInvalidIngredient, name)
	}
	if m.amount.IsNegative() {
		return Ingredient{}, fmt.Errorf("%w: %q has a negative amount", ErrInvalidIngredient, name)
	}
	if err := ValidatePrice(unitPrice); err != nil {
		return Ingredient{}, fmt.Errorf("%w: %q %v", ErrInvalidIngredient, name, err)
	}
	if expiry.IsZero() {
		return Ingredient{}, fmt.Errorf("%w: %q has no expiry date", ErrInvalidIngredient, name)
	}
	return Ingredient{
		ID:          uuid.NewString(),
		Name:        name,
		Measurement: m,
		UnitPrice:   unitPrice,
		Expiry:      expiry,
	}, nil
}

// ValidatePrice checks that a unit price is within [0, MaxUnitPrice].
func ValidatePrice(p Money) error {
	if p.IsNegative() || p.value.GreaterThan(MaxUnitPrice.value) {
		return fmt.Errorf("price %s is out of range [0, %s]", p.value, MaxUnitPrice)
	}
	return nil
}

// normalize lowercases and trims whitespace from a raw name.
func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Key returns the normalized name of the ingredient.
func (i Ingredient) Key() string { return normalize(i.Name) }

// CanMerge reports whether 'a' and 'b' are the same batch: same normalized name and same expiry date.
func CanMerge(a, b Ingredient) bool {
	return a.Key() == b.Key() && a.Expiry == b.Expiry
}

// Merge absorbs 'b' into 'a' and returns the result.
//
// The amount follows Measurement.Merge and the unit price is the highest of
// both. 'b' must be the same batch as 'a' (see CanMerge) and of the same kind.
func Merge(a, b Ingredient) (Ingredient, error) {
	if !CanMerge(a, b) {
		return a, fmt.Errorf("%w: %q expiring %s and %q expiring %s", ErrMergeRejected, a.Name, a.Expiry, b.Name, b.Expiry)
	}
	m, err := a.Measurement.Merge(b.Measurement)
	if err != nil {
		return a, fmt.Errorf("merging %q: %w", a.Name, err)
	}
	a.Measurement = m
	a.UnitPrice = a.UnitPrice.Max(b.UnitPrice)
	return a, nil
}

// Expired reports whether 'today' is strictly after the expiry date.
func (i Ingredient) Expired(today date.Date) bool { return today.After(i.Expiry) }

// Value returns the amount in standard unit times the unit price.
func (i Ingredient) Value() Money { return i.UnitPrice.Mul(i.Measurement.StandardAmount()) }

// String returns a one-line description of the batch.
func (i Ingredient) String() string {
	return fmt.Sprintf("%s %s (%s/%s, expires %s)", i.Name, i.Measurement, i.UnitPrice, StandardUnit(i.Measurement.Kind()), i.Expiry)
}

func (i Ingredient) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("batch", i.ID)
	w.Append("name", i.Name)
	w.EmbedFrom(i.Measurement)
	w.Append("kind", i.Measurement.Kind().String())
	w.Append("unitPrice", i.UnitPrice)
	w.Append("value", i.Value())
	w.Append("expiry", i.Expiry)
	return w.MarshalJSON()
}
