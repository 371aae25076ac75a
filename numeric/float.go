package numeric

import (
	"math"
	"strconv"

	"mathex/errs"
)

// Float64 is the machine-float backend. Checked and unchecked preloaded
// contexts use the same Float64Backend value: IEEE-754 float64 arithmetic
// has no integer-style wraparound to distinguish between the two flavors,
// it only ever produces +/-Inf or NaN, which this backend reports as
// errs.Overflow / errs.NaN respectively rather than letting it flow through
// silently.
type Float64 float64

func (a Float64) Add(b Float64) (Float64, error) { return checkFloat(float64(a) + float64(b)) }
func (a Float64) Sub(b Float64) (Float64, error) { return checkFloat(float64(a) - float64(b)) }
func (a Float64) Mul(b Float64) (Float64, error) { return checkFloat(float64(a) * float64(b)) }

func (a Float64) Div(b Float64) (Float64, error) {
	if b == 0 {
		return 0, errs.New(errs.DivisionByZero, "division by zero: %v / %v", a, b)
	}
	return checkFloat(float64(a) / float64(b))
}

func (a Float64) Mod(b Float64) (Float64, error) {
	if b == 0 {
		return 0, errs.New(errs.DivisionByZero, "division by zero: %v mod %v", a, b)
	}
	return checkFloat(math.Mod(float64(a), float64(b)))
}

func (a Float64) Pow(b Float64) (Float64, error) {
	return checkFloat(math.Pow(float64(a), float64(b)))
}

func (a Float64) Equal(b Float64) bool { return a == b }
func (a Float64) Less(b Float64) bool  { return a < b }
func (a Float64) Float64() (float64, error) {
	return float64(a), nil
}
func (a Float64) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 64) }

func checkFloat(f float64) (Float64, error) {
	if math.IsNaN(f) {
		return 0, errs.New(errs.NaN, "result is NaN")
	}
	if math.IsInf(f, 0) {
		return 0, errs.New(errs.Overflow, "result is infinite")
	}
	return Float64(f), nil
}

// ParseFloat64 parses a decimal-literal lexeme into a Float64.
func ParseFloat64(lexeme string) (Float64, error) {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0, errs.New(errs.InvalidInput, "invalid number literal: %q", lexeme)
	}
	return Float64(f), nil
}

// Float64FromFloat64 is the identity conversion, modulo the non-finite
// check every backend's FromFloat64 performs.
func Float64FromFloat64(f float64) (Float64, error) {
	if math.IsInf(f, 0) {
		return 0, errs.New(errs.NaN, "non-finite result: %v", f)
	}
	return checkFloat(f)
}

// Float64Backend is the Backend[Float64] value wired into float contexts.
var Float64Backend = Backend[Float64]{
	Name:        "float64",
	Zero:        0,
	One:         1,
	Parse:       ParseFloat64,
	FromFloat64: Float64FromFloat64,
}
