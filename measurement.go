package pantry

import "fmt"

// promotionThreshold is the amount, in the current unit, from which a merge
// result is expressed in the standard unit.
var promotionThreshold = Q(1000)

// Measurement is an amount expressed in a unit.
type Measurement struct {
	amount Quantity
	unit   Unit
}

// NewMeasurement returns a valid Measurement: the amount must not be negative and the unit must be known.
func NewMeasurement(amount Quantity, unit Unit) (Measurement, error) {
	if amount.IsNegative() {
		return Measurement{}, fmt.Errorf("%w: negative amount %s", ErrInvalidIngredient, amount)
	}
	if !unit.Known() {
		return Measurement{}, fmt.Errorf("%w: unknown unit", ErrInvalidIngredient)
	}
	return Measurement{amount: amount, unit: unit}, nil
}

// MustMeasurement is like NewMeasurement but panics on error.
func MustMeasurement(amount Quantity, unit Unit) Measurement {
	m, err := NewMeasurement(amount, unit)
	if err != nil {
		panic(err.Error())
	}
	return m
}

func (m Measurement) Amount() Quantity { return m.amount }
func (m Measurement) Unit() Unit       { return m.unit }
func (m Measurement) Kind() Kind       { return m.unit.Kind() }

// String returns the measurement as "1.1 kg".
func (m Measurement) String() string { return m.amount.String() + " " + m.unit.String() }

// In returns the measurement converted into unit 'u'.
func (m Measurement) In(u Unit) (Measurement, error) {
	amount, err := Convert(m.amount, m.unit, u)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{amount: amount, unit: u}, nil
}

// Standardize returns the measurement in the standard unit of its kind.
func (m Measurement) Standardize() Measurement {
	std, err := m.In(StandardUnit(m.Kind()))
	if err != nil {
		// m is valid by construction, its kind always has a standard unit.
		panic(err)
	}
	return std
}

// StandardAmount returns the amount expressed in the standard unit of its kind.
func (m Measurement) StandardAmount() Quantity { return m.Standardize().amount }

// Merge adds 'incoming' to m, keeping m's unit.
//
// The incoming amount is converted into m's unit first, and the sum is promoted
// to the standard unit once it reaches 1000 in m's unit. Merging mass with
// volume returns a *ConversionError.
func (m Measurement) Merge(incoming Measurement) (Measurement, error) {
	converted, err := incoming.In(m.unit)
	if err != nil {
		return m, err
	}
	sum := Measurement{amount: m.amount.Add(converted.amount), unit: m.unit}
	if sum.amount.GreaterThanOrEqual(promotionThreshold) {
		sum = sum.Standardize()
	}
	return sum, nil
}

func (m Measurement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", m.amount.jsonNumber())
	w.Append("unit", m.unit.String())
	return w.MarshalJSON()
}
