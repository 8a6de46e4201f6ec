package pantry

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies a Unit: conversions are only permitted between units of the same Kind.
type Kind int

const (
	// UnknownKind is the kind of UnknownUnit.
	UnknownKind Kind = iota
	// Mass units are measured against the kilogram.
	Mass
	// Volume units are measured against the liter.
	Volume
)

func (k Kind) String() string {
	switch k {
	case Mass:
		return "mass"
	case Volume:
		return "volume"
	default:
		return "unknown"
	}
}

// Unit is a closed set of measurement units.
type Unit int

const (
	// UnknownUnit is only ever the result of a failed parse.
	UnknownUnit Unit = iota
	KG
	G
	L
	DL
	ML
)

// Units lists every known unit, standard units first.
var Units = []Unit{KG, G, L, DL, ML}

type unitDef struct {
	symbol string
	kind   Kind
	// factor converts an amount in the standard unit of the kind into this unit.
	factor  decimal.Decimal
	aliases []string
}

var unitDefs = map[Unit]unitDef{
	KG: {"kg", Mass, decimal.NewFromInt(1), []string{"kilogram", "kilograms", "kilo", "kilos"}},
	G:  {"g", Mass, decimal.NewFromInt(1000), []string{"gram", "grams", "gr"}},
	L:  {"l", Volume, decimal.NewFromInt(1), []string{"liter", "liters", "litre", "litres"}},
	DL: {"dl", Volume, decimal.NewFromInt(10), []string{"deciliter", "deciliters", "decilitre", "decilitres"}},
	ML: {"ml", Volume, decimal.NewFromInt(1000), []string{"milliliter", "milliliters", "millilitre", "millilitres"}},
}

// Kind returns the kind the unit measures.
func (u Unit) Kind() Kind { return unitDefs[u].kind }

// Known reports whether u is one of the closed set of units.
func (u Unit) Known() bool {
	_, ok := unitDefs[u]
	return ok
}

// String returns the unit symbol.
func (u Unit) String() string {
	if def, ok := unitDefs[u]; ok {
		return def.symbol
	}
	return "?"
}

// Factor returns how many u make one standard unit of u's kind.
func (u Unit) Factor() decimal.Decimal { return unitDefs[u].factor }

// ParseUnit parses a unit symbol or name, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, u := range Units {
		def := unitDefs[u]
		if s == def.symbol {
			return u, nil
		}
		for _, alias := range def.aliases {
			if s == alias {
				return u, nil
			}
		}
	}
	return UnknownUnit, fmt.Errorf("unknown unit %q, want one of kg, g, l, dl, ml", s)
}

// StandardUnit returns the canonical unit of a kind: KG for mass, L for volume.
func StandardUnit(k Kind) Unit {
	switch k {
	case Mass:
		return KG
	case Volume:
		return L
	default:
		return UnknownUnit
	}
}

// Convert converts 'amount' expressed in 'from' into 'to'.
//
// Both units must be known and of the same kind, otherwise a *ConversionError is returned.
// The result is rounded to 2 decimals, half away from zero.
func Convert(amount Quantity, from, to Unit) (Quantity, error) {
	if !from.Known() || !to.Known() || from.Kind() != to.Kind() {
		return Quantity{}, &ConversionError{From: from, To: to}
	}
	if from == to {
		return amount, nil
	}
	v := amount.value.Div(from.Factor()).Mul(to.Factor())
	return Quantity{value: v}.Round(), nil
}
