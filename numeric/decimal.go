package numeric

import (
	"math"

	"github.com/shopspring/decimal"

	"mathex/errs"
)

// Decimal is the arbitrary-precision backend, wrapping
// github.com/shopspring/decimal. No third-party or stdlib arbitrary-precision
// decimal type exists anywhere in the example corpus this module was built
// from (see DESIGN.md), so this one dependency is taken directly from the
// ecosystem rather than hand-rolled over math/big.
type Decimal struct {
	d decimal.Decimal
}

// NewDecimal wraps a decimal.Decimal as the evaluator's numeric type.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{d: d} }

func (a Decimal) Add(b Decimal) (Decimal, error) { return Decimal{a.d.Add(b.d)}, nil }
func (a Decimal) Sub(b Decimal) (Decimal, error) { return Decimal{a.d.Sub(b.d)}, nil }
func (a Decimal) Mul(b Decimal) (Decimal, error) { return Decimal{a.d.Mul(b.d)}, nil }

func (a Decimal) Div(b Decimal) (Decimal, error) {
	if b.d.IsZero() {
		return Decimal{}, errs.New(errs.DivisionByZero, "division by zero: %s / %s", a, b)
	}
	return Decimal{a.d.Div(b.d)}, nil
}

func (a Decimal) Mod(b Decimal) (Decimal, error) {
	if b.d.IsZero() {
		return Decimal{}, errs.New(errs.DivisionByZero, "division by zero: %s mod %s", a, b)
	}
	return Decimal{a.d.Mod(b.d)}, nil
}

func (a Decimal) Pow(b Decimal) (Decimal, error) {
	af, err := a.Float64()
	if err != nil {
		return Decimal{}, err
	}
	bf, err := b.Float64()
	if err != nil {
		return Decimal{}, err
	}
	r := math.Pow(af, bf)
	if math.IsNaN(r) {
		return Decimal{}, errs.New(errs.NaN, "result is NaN")
	}
	if math.IsInf(r, 0) {
		return Decimal{}, errs.New(errs.Overflow, "result is infinite")
	}
	return Decimal{decimal.NewFromFloat(r)}, nil
}

func (a Decimal) Equal(b Decimal) bool { return a.d.Equal(b.d) }
func (a Decimal) Less(b Decimal) bool  { return a.d.LessThan(b.d) }

func (a Decimal) Float64() (float64, error) {
	f, _ := a.d.Float64()
	return f, nil
}

func (a Decimal) String() string { return a.d.String() }

// ParseDecimal parses a decimal-literal lexeme into a Decimal.
func ParseDecimal(lexeme string) (Decimal, error) {
	d, err := decimal.NewFromString(lexeme)
	if err != nil {
		return Decimal{}, errs.New(errs.InvalidInput, "invalid number literal: %q", lexeme)
	}
	return Decimal{d}, nil
}

// DecimalFromFloat64 builds a Decimal from a transcendental result.
func DecimalFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) {
		return Decimal{}, errs.New(errs.NaN, "result is NaN")
	}
	if math.IsInf(f, 0) {
		return Decimal{}, errs.New(errs.NaN, "result is infinite")
	}
	return Decimal{decimal.NewFromFloat(f)}, nil
}

// DecimalBackend is the Backend[Decimal] value wired into decimal contexts.
var DecimalBackend = Backend[Decimal]{
	Name:        "decimal",
	Zero:        Decimal{decimal.Zero},
	One:         Decimal{decimal.NewFromInt(1)},
	Parse:       ParseDecimal,
	FromFloat64: DecimalFromFloat64,
}
