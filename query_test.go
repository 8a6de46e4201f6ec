package pantry

import (
	"encoding/json"
	"reflect"
	"testing"
)

func queryInventory(t *testing.T) *Inventory {
	t.Helper()
	inv := NewInventory()
	fridge, _ := inv.CreateLedger("Fridge")
	pantry, _ := inv.CreateLedger("Pantry")
	fridge.Add(ingredient(t, "Milk", 1, L, 2, today))
	pantry.Add(ingredient(t, "Sugar", 500, G, 3, today))
	pantry.Add(ingredient(t, "Flour", 2, KG, 1, today))
	inv.SetCurrent("pantry")
	return inv
}

func TestSnapshot(t *testing.T) {
	inv := queryInventory(t)
	raw, err := json.Marshal(inv)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Current  string `json:"current"`
		Storages []struct {
			Storage     string `json:"storage"`
			Ingredients []struct {
				Name   string  `json:"name"`
				Amount float64 `json:"amount"`
				Unit   string  `json:"unit"`
				Kind   string  `json:"kind"`
				Expiry string  `json:"expiry"`
			} `json:"ingredients"`
		} `json:"storages"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("snapshot is not valid json: %v\n%s", err, raw)
	}
	if doc.Current != "Pantry" || len(doc.Storages) != 2 || doc.Storages[1].Storage != "Pantry" {
		t.Fatalf("unexpected snapshot: %s", raw)
	}
	sugar := doc.Storages[1].Ingredients[1]
	if sugar.Name != "Sugar" || sugar.Amount != 500 || sugar.Unit != "g" || sugar.Kind != "mass" || sugar.Expiry != "2026-10-15" {
		t.Errorf("unexpected sugar entry %+v", sugar)
	}
}

func TestQuery(t *testing.T) {
	inv := queryInventory(t)
	tests := []struct {
		expr string
		want any
	}{
		{"$.current", "Pantry"},
		{"$.storages[*].storage", []any{"Fridge", "Pantry"}},
		{"$.storages[?(@.storage == 'Pantry')].ingredients[*].name", []any{"Flour", "Sugar"}},
		{"$..ingredients[?(@.kind == 'volume')].name", []any{"Milk"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Query(inv, tt.expr)
			if err != nil {
				t.Fatalf("Query() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Query(%q) = %#v, want %#v", tt.expr, got, tt.want)
			}
		})
	}

	if _, err := Query(inv, "$.storages[?(@.storage =="); err == nil {
		t.Errorf("Query(invalid) error = nil, want an error")
	}
}
