package shell

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/renderer"
)

// maxExpiringDays bounds LIST expiring.
const maxExpiringDays = 3650

func listHandler() Handler {
	return vocabulary{keyword: List, words: map[string]HandlerFunc{
		"storages":    listStorages,
		"ingredients": listIngredients,
		"expired":     listExpired,
		"expiring":    listExpiring,
		"value":       listValue,
		"json":        listJSON,
	}}
}

func listStorages(s *Session, in Input) error {
	cur, _ := s.Inventory.Current()
	s.Print(renderer.Storages(s.Inventory.Ledgers(), cur))
	return nil
}

func listIngredients(s *Session, in Input) error {
	l, err := current(s)
	if err != nil {
		return err
	}
	s.Print(renderer.Ingredients(l.Name(), l.List(), s.Today()))
	return nil
}

// scope checks the optional "all" argument.
func scope(in Input) (all bool, err error) {
	switch {
	case in.Argument == "":
		return false, nil
	case strings.EqualFold(in.Argument, "all"):
		return true, nil
	default:
		return false, &IllegalCommandError{Keyword: in.Keyword, Subcommand: in.Subcommand + " " + in.Argument}
	}
}

func listExpired(s *Session, in Input) error {
	all, err := scope(in)
	if err != nil {
		return err
	}
	today := s.Today()
	if all {
		s.Print(renderer.StoredIngredients("Expired", s.Inventory.Expired(today), today))
		return nil
	}
	l, err := current(s)
	if err != nil {
		return err
	}
	s.Print(renderer.Ingredients("Expired in "+l.Name(), l.Expired(today), today))
	return nil
}

func listExpiring(s *Session, in Input) error {
	days, err := parseInt(in.Argument, 0, maxExpiringDays)
	if err != nil {
		if in.Argument != "" {
			s.Printf("%v.", err)
		}
		days, err = s.Prompt.AskInt("Within how many days", 0, maxExpiringDays)
		if err != nil {
			return err
		}
	}
	today := s.Today()
	title := fmt.Sprintf("Expiring within %d days", days)
	s.Print(renderer.StoredIngredients(title, s.Inventory.ExpiringWithin(today, days), today))
	return nil
}

func listValue(s *Session, in Input) error {
	all, err := scope(in)
	if err != nil {
		return err
	}
	if all {
		s.Printf("Total value of %d storages: %s.", len(s.Inventory.Ledgers()), s.Inventory.TotalValue())
		return nil
	}
	l, err := current(s)
	if err != nil {
		return err
	}
	s.Printf("Value of %s: %s.", l.Name(), l.TotalValue())
	return nil
}

func listJSON(s *Session, in Input) error {
	var v any = s.Inventory
	if in.Argument != "" {
		res, err := pantry.Query(s.Inventory, in.Argument)
		if err != nil {
			return err
		}
		v = res
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	s.Print("```json\n" + string(b) + "\n```\n")
	return nil
}
