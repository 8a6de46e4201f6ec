package pantry

import (
	"testing"

	"github.com/etnz/pantry/date"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// today is the fixed reference date used by tests.
var today = date.New(2026, 10, 15)

// ingredient is a helper for test to create a valid ingredient or fail.
func ingredient(t *testing.T, name string, amount float64, unit Unit, price float64, expiry date.Date) Ingredient {
	t.Helper()
	ing, err := NewIngredient(name, MustMeasurement(Q(amount), unit), EUR(price), expiry)
	if err != nil {
		t.Fatalf("NewIngredient(%q) unexpected error: %v", name, err)
	}
	return ing
}
