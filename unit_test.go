package pantry

import (
	"errors"
	"fmt"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		amount   float64
		from, to Unit
		want     float64
	}{
		{500, G, KG, 0.5},
		{1.5, KG, G, 1500},
		{1234, G, KG, 1.23},
		{1235, G, KG, 1.24}, // half away from zero
		{1, L, ML, 1000},
		{1, L, DL, 10},
		{25, DL, L, 2.5},
		{333, ML, DL, 3.33},
		{5, ML, L, 0.01}, // 0.005 rounds up
		{4, ML, L, 0},
		{7, G, G, 7},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v%s->%s", tt.amount, tt.from, tt.to), func(t *testing.T) {
			got, err := Convert(Q(tt.amount), tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			if !got.Equal(Q(tt.want)) {
				t.Errorf("Convert(%v, %s, %s) = %s, want %v", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertAcrossKinds(t *testing.T) {
	for _, pair := range [][2]Unit{{KG, L}, {G, ML}, {DL, G}, {UnknownUnit, KG}, {KG, UnknownUnit}} {
		_, err := Convert(Q(1), pair[0], pair[1])
		if !errors.Is(err, ErrConversion) {
			t.Errorf("Convert(%s, %s) error = %v, want ErrConversion", pair[0], pair[1], err)
		}
		var ce *ConversionError
		if !errors.As(err, &ce) || ce.From != pair[0] || ce.To != pair[1] {
			t.Errorf("Convert(%s, %s) error = %#v, want a *ConversionError", pair[0], pair[1], err)
		}
	}
}

// TestConvertRoundTrip checks that converting into a finer unit and back stays within two roundings.
func TestConvertRoundTrip(t *testing.T) {
	tolerance := Q(0.02)
	amounts := []float64{0, 0.01, 0.5, 1, 3.33, 12.345, 999.99, 1000, 4321.5}
	for _, u := range Units {
		for _, v := range Units {
			if u.Kind() != v.Kind() || v.Factor().LessThan(u.Factor()) {
				continue
			}
			for _, a := range amounts {
				there, err := Convert(Q(a), u, v)
				if err != nil {
					t.Fatal(err)
				}
				back, err := Convert(there, v, u)
				if err != nil {
					t.Fatal(err)
				}
				diff := back.Sub(Q(a))
				if diff.IsNegative() {
					diff = Q(0).Sub(diff)
				}
				if diff.GreaterThan(tolerance) {
					t.Errorf("%v %s -> %s -> %s = %s, drift %s", a, u, v, u, back, diff)
				}
			}
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
		err  bool
	}{
		{"kg", KG, false},
		{"KG", KG, false},
		{" g ", G, false},
		{"grams", G, false},
		{"L", L, false},
		{"litre", L, false},
		{"dl", DL, false},
		{"mL", ML, false},
		{"cup", UnknownUnit, true},
		{"", UnknownUnit, true},
	}
	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseUnit(%q) error = %v, wantErr %v", tt.in, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStandardUnit(t *testing.T) {
	for _, u := range Units {
		std := StandardUnit(u.Kind())
		if std.Kind() != u.Kind() {
			t.Errorf("StandardUnit(%s) = %s of another kind", u.Kind(), std)
		}
		if !std.Factor().Equal(Q(1).value) {
			t.Errorf("StandardUnit(%s) = %s has factor %s, want 1", u.Kind(), std, std.Factor())
		}
	}
	if got := StandardUnit(UnknownKind); got != UnknownUnit {
		t.Errorf("StandardUnit(UnknownKind) = %s, want UnknownUnit", got)
	}
}
