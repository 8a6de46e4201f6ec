package pantry

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Snapshot returns the inventory as a generic JSON document (maps, slices,
// strings, float64 and bool), as used by Query.
func Snapshot(inv *Inventory) (any, error) {
	raw, err := json.Marshal(inv)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Query evaluates a JSONPath expression, like "$.storages[*].ingredients[?(@.kind == 'mass')].name",
// over the inventory snapshot.
func Query(inv *Inventory, expr string) (any, error) {
	v, err := Snapshot(inv)
	if err != nil {
		return nil, fmt.Errorf("cannot snapshot inventory: %w", err)
	}
	res, err := jsonpath.Get(expr, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return res, nil
}
