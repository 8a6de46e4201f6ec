package renderer

import (
	"testing"

	"github.com/etnz/pantry"
	"github.com/etnz/pantry/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = date.New(2026, 10, 15)

func ingredient(t *testing.T, name string, amount float64, unit pantry.Unit, price float64, expiry date.Date) pantry.Ingredient {
	t.Helper()
	ing, err := pantry.NewIngredient(name, pantry.MustMeasurement(pantry.Q(amount), unit), pantry.M(price, "EUR"), expiry)
	require.NoError(t, err)
	return ing
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "expired", Status(ingredient(t, "Milk", 1, pantry.L, 1, today.Add(-1)), today))
	assert.Equal(t, "expires today", Status(ingredient(t, "Milk", 1, pantry.L, 1, today), today))
	assert.Equal(t, "expires tomorrow", Status(ingredient(t, "Milk", 1, pantry.L, 1, today.Add(1)), today))
	assert.Equal(t, "12 days left", Status(ingredient(t, "Milk", 1, pantry.L, 1, today.Add(12)), today))
}

func TestIngredients(t *testing.T) {
	md := Ingredients("Fridge", []pantry.Ingredient{
		ingredient(t, "Butter", 250, pantry.G, 10, today.Add(3)),
		ingredient(t, "Milk", 1, pantry.L, 2, today.Add(-1)),
	}, today)

	assert.Contains(t, md, "## Fridge")
	assert.Contains(t, md, "| Ingredient | Amount |")
	assert.NotContains(t, md, "Storage |")
	assert.Contains(t, md, "| Butter | 250 g |")
	assert.Contains(t, md, "/kg |")
	assert.Contains(t, md, "| 2026-10-14 | expired |")
	assert.Contains(t, md, "**Total value:**")
}

func TestIngredientsEmpty(t *testing.T) {
	md := Ingredients("Fridge", nil, today)
	assert.Contains(t, md, "_Nothing here._")
	assert.NotContains(t, md, "| Ingredient |")
}

func TestStoredIngredients(t *testing.T) {
	md := StoredIngredients("Expired", []pantry.Stored{
		{Storage: "Fridge", Ingredient: ingredient(t, "Milk", 1, pantry.L, 2, today.Add(-1))},
	}, today)
	assert.Contains(t, md, "| Storage | Ingredient |")
	assert.Contains(t, md, "| Fridge | Milk | 1 l |")
}

func TestStorages(t *testing.T) {
	inv := pantry.NewInventory()
	fridge, err := inv.CreateLedger("Fridge")
	require.NoError(t, err)
	_, err = inv.CreateLedger("Pantry")
	require.NoError(t, err)
	_, err = fridge.Add(ingredient(t, "Milk", 1, pantry.L, 2, today))
	require.NoError(t, err)

	md := Storages(inv.Ledgers(), fridge)
	assert.Contains(t, md, "| > | Fridge | 1 |")
	assert.Contains(t, md, "|  | Pantry | 0 |")

	assert.Contains(t, Storages(nil, nil), "No storage yet")
}

func TestUnits(t *testing.T) {
	md := Units()
	assert.Contains(t, md, "| g | mass | 1000 g = 1 kg |")
	assert.Contains(t, md, "| dl | volume | 10 dl = 1 l |")
}

func TestMarkdownPlain(t *testing.T) {
	assert.Equal(t, "# Title\n", Markdown("# Title\n", StylePlain))
	assert.Equal(t, "# Title\n", Markdown("# Title\n", ""))
}

func TestMarkdownStyled(t *testing.T) {
	out := Markdown("# Title\n\nsome *text*\n", "notty")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func TestTableCellsEscapePipes(t *testing.T) {
	inv := pantry.NewInventory()
	l, err := inv.CreateLedger("Top|Shelf")
	require.NoError(t, err)
	ing := ingredient(t, "Salt|Pepper", 100, pantry.G, 5, today.Add(10))

	assert.Contains(t, Ingredients("Shelf", []pantry.Ingredient{ing}, today), `| Salt\|Pepper | 100 g |`)
	assert.Contains(t, StoredIngredients("All", []pantry.Stored{{Storage: l.Name(), Ingredient: ing}}, today), `| Top\|Shelf | Salt\|Pepper |`)
	assert.Contains(t, Storages(inv.Ledgers(), l), `| > | Top\|Shelf | 0 |`)
}
