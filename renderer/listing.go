package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/date"
)

// ingredientRow is one line of an ingredient table.
type ingredientRow struct {
	Storage   string
	Name      string
	Amount    string
	UnitPrice string
	Value     string
	Expiry    string
	Status    string
}

type ingredientTable struct {
	Title       string
	ShowStorage bool
	Rows        []ingredientRow
	Total       string
	Empty       string
}

func newRow(storage string, ing pantry.Ingredient, today date.Date) ingredientRow {
	std := pantry.StandardUnit(ing.Measurement.Kind())
	return ingredientRow{
		Storage:   cell(storage),
		Name:      cell(ing.Name),
		Amount:    ing.Measurement.String(),
		UnitPrice: fmt.Sprintf("%s/%s", ing.UnitPrice, std),
		Value:     ing.Value().String(),
		Expiry:    ing.Expiry.String(),
		Status:    Status(ing, today),
	}
}

// cell escapes a value for a markdown table cell.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// Status describes how close to expiry a batch is.
func Status(ing pantry.Ingredient, today date.Date) string {
	if ing.Expired(today) {
		return "expired"
	}
	switch days := today.DaysUntil(ing.Expiry); days {
	case 0:
		return "expires today"
	case 1:
		return "expires tomorrow"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// Ingredients renders the batches of a single storage.
func Ingredients(title string, list []pantry.Ingredient, today date.Date) string {
	t := ingredientTable{Title: title, Empty: "Nothing here."}
	total := pantry.Money{}
	for _, ing := range list {
		t.Rows = append(t.Rows, newRow("", ing, today))
		total = total.Add(ing.Value())
	}
	t.Total = total.String()
	return renderTemplate("ingredients.md", t)
}

// StoredIngredients renders batches from several storages.
func StoredIngredients(title string, list []pantry.Stored, today date.Date) string {
	t := ingredientTable{Title: title, ShowStorage: true, Empty: "Nothing here."}
	for _, s := range list {
		t.Rows = append(t.Rows, newRow(s.Storage, s.Ingredient, today))
	}
	t.Total = pantry.Value(list).String()
	return renderTemplate("ingredients.md", t)
}

type storageRow struct {
	Current bool
	Name    string
	Batches int
	Value   string
}

// Storages renders the storage list, marking the current one.
func Storages(ledgers []*pantry.Ledger, current *pantry.Ledger) string {
	var data struct {
		Rows  []storageRow
		Total string
	}
	total := pantry.Money{}
	for _, l := range ledgers {
		data.Rows = append(data.Rows, storageRow{
			Current: l == current,
			Name:    cell(l.Name()),
			Batches: l.Len(),
			Value:   l.TotalValue().String(),
		})
		total = total.Add(l.TotalValue())
	}
	data.Total = total.String()
	return renderTemplate("storages.md", data)
}

type unitRow struct {
	Symbol   string
	Kind     string
	Factor   string
	Standard string
}

// Units renders the unit conversion table.
func Units() string {
	var rows []unitRow
	for _, u := range pantry.Units {
		rows = append(rows, unitRow{
			Symbol:   u.String(),
			Kind:     u.Kind().String(),
			Factor:   u.Factor().String(),
			Standard: pantry.StandardUnit(u.Kind()).String(),
		})
	}
	return renderTemplate("units.md", rows)
}
