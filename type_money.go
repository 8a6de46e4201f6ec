package pantry

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "EUR"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a numeric value and an ISO currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal amount in the given currency.
func ParseMoney(s, currency string) (Money, error) {
	q, err := ParseQuantity(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: q.value, cur: currency}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if minor.Abs().LessThanOrEqual(maxMinorUnits) {
		return cur.Formatter().Format(minor.IntPart())
	}
	return formatLarge(cur.Formatter(), minor)
}

// maxMinorUnits is the largest amount, in minor units, go-money can format.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// formatLarge formats an integral amount of minor units beyond int64 the way
// money.Formatter does.
func formatLarge(f *money.Formatter, minor decimal.Decimal) string {
	digits := minor.Abs().String()
	if len(digits) <= f.Fraction {
		digits = strings.Repeat("0", f.Fraction-len(digits)+1) + digits
	}
	whole, frac := digits[:len(digits)-f.Fraction], digits[len(digits)-f.Fraction:]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && f.Thousand != "" && (len(whole)-i)%3 == 0 {
			b.WriteString(f.Thousand)
		}
		b.WriteRune(r)
	}
	if f.Fraction > 0 {
		b.WriteString(f.Decimal)
		b.WriteString(frac)
	}
	out := strings.Replace(f.Template, "1", b.String(), 1)
	out = strings.Replace(out, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		out = "-" + out
	}
	return out
}

func (m Money) Currency() string            { return m.cur }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool    { return m.value.GreaterThan(n.value) }
func (m Money) Mul(n Quantity) Money        { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Amount() decimal.Decimal     { return m.value }
func (m Money) WithCurrency(c string) Money { return Money{value: m.value, cur: c} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Max returns the greater of m and n.
func (m Money) Max(n Money) Money {
	if n.value.GreaterThan(m.value) {
		return Money{value: n.value, cur: cur(m, n)}
	}
	return Money{value: m.value, cur: cur(m, n)}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", Quantity{value: m.value}.jsonNumber())
	return w.MarshalJSON()
}
