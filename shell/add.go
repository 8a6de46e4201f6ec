package shell

import (
	"fmt"

	"github.com/etnz/pantry"
)

func addHandler() Handler {
	return vocabulary{keyword: Add, words: map[string]HandlerFunc{
		"storage":    addStorage,
		"ingredient": addIngredient,
	}}
}

func addStorage(s *Session, in Input) error {
	name, err := argument(s, in, "Storage name")
	if err != nil {
		return err
	}
	l, err := s.Inventory.CreateLedger(name)
	if err != nil {
		return err
	}
	s.Printf("Created storage %q.", l.Name())
	return nil
}

// current returns the current storage with a hint on how to select one.
func current(s *Session) (*pantry.Ledger, error) {
	l, err := s.Inventory.Current()
	if err != nil {
		return nil, fmt.Errorf("%w, use GO to <storage> first", err)
	}
	return l, nil
}

// addIngredient asks for the batch details one by one, any answer can abort.
func addIngredient(s *Session, in Input) error {
	l, err := current(s)
	if err != nil {
		return err
	}
	name, err := argument(s, in, "Ingredient name")
	if err != nil {
		return err
	}

	// Batches of the same ingredient keep the same kind.
	kind := pantry.UnknownKind
	if batches := l.Get(name); len(batches) > 0 {
		kind = batches[0].Measurement.Kind()
	}

	amount, err := s.Prompt.AskAmount("Amount")
	if err != nil {
		return err
	}
	unit, err := s.Prompt.AskUnit("Unit (kg, g, l, dl, ml)", kind)
	if err != nil {
		return err
	}
	price, err := s.Prompt.AskPrice(fmt.Sprintf("Price per %s", pantry.StandardUnit(unit.Kind())), s.Currency())
	if err != nil {
		return err
	}
	expiry, err := s.Prompt.AskDate("Expiry date (YYYY-MM-DD or +7d)", s.Today())
	if err != nil {
		return err
	}

	m, err := pantry.NewMeasurement(amount, unit)
	if err != nil {
		return err
	}
	ing, err := pantry.NewIngredient(name, m, price, expiry)
	if err != nil {
		return err
	}
	merged, err := l.Add(ing)
	if err != nil {
		return err
	}
	if !merged {
		s.Printf("Added %s to %s.", ing, l.Name())
		return nil
	}
	for _, batch := range l.Get(name) {
		if batch.Expiry == ing.Expiry {
			s.log.Printf("merged %s into batch %s of %q", ing.Measurement, batch.ID, l.Name())
			s.Printf("Merged into the existing batch: %s.", batch)
		}
	}
	return nil
}
