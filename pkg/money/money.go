package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance used when checking stored totals against
// recomputed ones (subtotal vs unit_price*qty, order total vs item sum).
var Epsilon = decimal.NewFromFloat(0.01)

// Money is a fixed-point amount with 2 decimal places. Totals are never
// represented as binary floats; arithmetic stays exact end to end.
type Money struct {
	d decimal.Decimal
}

func Zero() Money { return Money{} }

func New(d decimal.Decimal) Money {
	return Money{d: d.Round(2)}
}

func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money %q: %w", s, err)
	}
	return New(d), nil
}

// FromFloat exists for test fixtures and env parsing only; the value is
// rounded to 2 places immediately.
func FromFloat(f float64) Money {
	return New(decimal.NewFromFloat(f))
}

func (m Money) Decimal() decimal.Decimal { return m.d }

func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

func (m Money) Sub(o Money) Money {
	return Money{d: m.d.Sub(o.d)}
}

// MulInt multiplies a unit price by an integer quantity.
func (m Money) MulInt(qty int) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(int64(qty)))}
}

// MulRate applies a fractional rate (e.g. tax) and rounds to 2 places.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{d: m.d.Mul(rate).Round(2)}
}

// Div divides by a count, rounding to 2 places. Callers must guard n == 0.
func (m Money) Div(n int64) Money {
	return Money{d: m.d.Div(decimal.NewFromInt(n)).Round(2)}
}

func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

// EqualWithin reports whether two amounts differ by at most Epsilon.
func (m Money) EqualWithin(o Money) bool {
	return m.d.Sub(o.d).Abs().LessThanOrEqual(Epsilon)
}

func (m Money) Cmp(o Money) int  { return m.d.Cmp(o.d) }
func (m Money) IsZero() bool     { return m.d.IsZero() }
func (m Money) IsPositive() bool { return m.d.IsPositive() }
func (m Money) String() string   { return m.d.StringFixed(2) }

// JSON: always a decimal string with 2 places, never a float.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid money %q: %w", s, err)
	}
	m.d = d.Round(2)
	return nil
}

// SQL: stored as a decimal string, scanned back through decimal.Decimal.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

func (m *Money) Scan(src any) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return err
	}
	m.d = d.Round(2)
	return nil
}

// GormDataType keeps migrations on a fixed-point column.
func (Money) GormDataType() string { return "decimal(10,2)" }
