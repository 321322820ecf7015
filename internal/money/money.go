// Package money wraps shopspring/decimal for the registrar's fixed-point
// amounts: two decimal places, serialized as a bare JSON number.
package money

import (
	"github.com/shopspring/decimal"
)

// Amount is a fiscal sum with at most two decimal places.
type Amount struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{}

// FromDecimal wraps an existing decimal value.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// FromFloat creates an amount from a float, rounded to 2 places.
func FromFloat(v float64) Amount {
	return Amount{d: decimal.NewFromFloat(v).Round(2)}
}

// FromInt creates a whole-unit amount.
func FromInt(v int64) Amount {
	return Amount{d: decimal.NewFromInt(v)}
}

// FromString parses an amount from its decimal text form.
func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Amount{d: d}, nil
}

// MustFromString parses an amount, panicking on error. Test helper.
func MustFromString(s string) Amount {
	a, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// String renders the canonical decimal text form.
func (a Amount) String() string {
	return a.d.String()
}

// Exact2DP reports whether the amount is representable with at most
// two digits after the point, the registrar's wire precision.
func (a Amount) Exact2DP() bool {
	return a.d.Equal(a.d.Round(2))
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Mul returns a * b rounded to 2 places.
func (a Amount) Mul(b Amount) Amount {
	return Amount{d: a.d.Mul(b.d).Round(2)}
}

// Equal reports value equality.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// Sum adds up a slice of amounts.
func Sum(values []Amount) Amount {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// MarshalJSON renders the amount as an unquoted JSON number, the form
// the registrar expects for every sum field.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.d.String()), nil
}

// UnmarshalJSON accepts both quoted and bare numeric forms.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	a.d = d
	return nil
}
