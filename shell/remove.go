package shell

import (
	"fmt"
	"strings"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/renderer"
)

func removeHandler() Handler {
	return vocabulary{keyword: Remove, words: map[string]HandlerFunc{
		"storage":    removeStorage,
		"ingredient": removeIngredient,
		"batch":      removeBatch,
		"expired":    removeExpired,
	}}
}

func removeStorage(s *Session, in Input) error {
	name, err := argument(s, in, "Storage name")
	if err != nil {
		return err
	}
	before, _ := s.Inventory.Current()
	l, ok := s.Inventory.Ledger(name)
	if !ok || !s.Inventory.RemoveLedger(name) {
		return fmt.Errorf("%w: %q", pantry.ErrUnknownStorage, name)
	}
	s.Printf("Removed storage %q and its %d batches.", l.Name(), l.Len())
	if before == l {
		s.Printf("No storage selected anymore.")
	}
	return nil
}

func removeIngredient(s *Session, in Input) error {
	l, err := current(s)
	if err != nil {
		return err
	}
	name, err := argument(s, in, "Ingredient name")
	if err != nil {
		return err
	}
	if !l.Remove(name) {
		return fmt.Errorf("%w: %q in %s", pantry.ErrUnknownIngredient, name, l.Name())
	}
	s.Printf("Removed %q from %s.", name, l.Name())
	return nil
}

func removeBatch(s *Session, in Input) error {
	id, err := argument(s, in, "Batch id")
	if err != nil {
		return err
	}
	for _, l := range s.Inventory.Ledgers() {
		if ing, ok := l.RemoveBatch(id); ok {
			s.Printf("Removed %s from %s.", ing, l.Name())
			return nil
		}
	}
	return fmt.Errorf("%w: no batch %q", pantry.ErrUnknownIngredient, id)
}

func removeExpired(s *Session, in Input) error {
	today := s.Today()
	switch {
	case in.Argument == "":
		l, err := current(s)
		if err != nil {
			return err
		}
		removed := l.RemoveExpired(today)
		s.Print(renderer.Ingredients("Removed from "+l.Name(), removed, today))
	case strings.EqualFold(in.Argument, "all"):
		removed := s.Inventory.RemoveExpired(today)
		s.Print(renderer.StoredIngredients("Removed from every storage", removed, today))
	default:
		return &IllegalCommandError{Keyword: Remove, Subcommand: in.Subcommand + " " + in.Argument}
	}
	return nil
}
