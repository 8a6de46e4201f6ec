package shell

import (
	"fmt"

	"github.com/etnz/pantry/renderer"
)

func findHandler() Handler {
	return vocabulary{keyword: Find, words: map[string]HandlerFunc{
		"ingredient": findIngredient,
		"all":        findAll,
		"storage":    findStorage,
	}}
}

func findIngredient(s *Session, in Input) error {
	l, err := current(s)
	if err != nil {
		return err
	}
	fragment, err := argument(s, in, "Search")
	if err != nil {
		return err
	}
	s.Print(renderer.Ingredients(fmt.Sprintf("%q in %s", fragment, l.Name()), l.Find(fragment), s.Today()))
	return nil
}

func findAll(s *Session, in Input) error {
	fragment, err := argument(s, in, "Search")
	if err != nil {
		return err
	}
	s.Print(renderer.StoredIngredients(fmt.Sprintf("%q everywhere", fragment), s.Inventory.Find(fragment), s.Today()))
	return nil
}

func findStorage(s *Session, in Input) error {
	fragment, err := argument(s, in, "Search")
	if err != nil {
		return err
	}
	cur, _ := s.Inventory.Current()
	s.Print(renderer.Storages(s.Inventory.FindLedgers(fragment), cur))
	return nil
}
