package numeric

import (
	"math/cmplx"
	"strconv"
	"strings"

	"mathex/errs"
)

// Complex is the complex-number backend. It deliberately does not implement
// Ordered: complex values have no natural total order, so min/max,
// floor/ceil/truncate/round, sign and factorial are never registered for
// this backend (see stdlib.Preload). This is the "Context-composition
// decision, not a core invariant" spec.md §4.5 calls out.
type Complex complex128

func (a Complex) Add(b Complex) (Complex, error) {
	return Complex(complex128(a) + complex128(b)), nil
}
func (a Complex) Sub(b Complex) (Complex, error) {
	return Complex(complex128(a) - complex128(b)), nil
}
func (a Complex) Mul(b Complex) (Complex, error) {
	return Complex(complex128(a) * complex128(b)), nil
}

func (a Complex) Div(b Complex) (Complex, error) {
	if b == 0 {
		return 0, errs.New(errs.DivisionByZero, "division by zero: %s / %s", a, b)
	}
	return Complex(complex128(a) / complex128(b)), nil
}

// Mod has no standard definition over the complex field; it is kept to
// satisfy the Numeric interface. The `mod` binary operator is registered for
// every backend, so on the complex backend it always fails with this error.
func (a Complex) Mod(b Complex) (Complex, error) {
	return 0, errs.New(errs.InvalidInput, "mod is not defined for complex numbers")
}

func (a Complex) Pow(b Complex) (Complex, error) {
	return Complex(cmplx.Pow(complex128(a), complex128(b))), nil
}

func (a Complex) Equal(b Complex) bool { return a == b }

// Float64 returns the real part, matching the convention the transcendental
// helpers use when a Complex is coerced to a working float64 precision for
// e.g. argument validation.
func (a Complex) Float64() (float64, error) {
	return real(complex128(a)), nil
}

func (a Complex) String() string {
	c := complex128(a)
	re, im := real(c), imag(c)
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(re, 'g', -1, 64))
	if im >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatFloat(im, 'g', -1, 64))
	b.WriteByte('i')
	return b.String()
}

// ParseComplex parses a decimal-literal lexeme as a purely real Complex; the
// imaginary unit is tokenized separately as the constant `i` (spec.md §4.1
// rule 2, triggered by Config.ComplexNumber).
func ParseComplex(lexeme string) (Complex, error) {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0, errs.New(errs.InvalidInput, "invalid number literal: %q", lexeme)
	}
	return Complex(complex(f, 0)), nil
}

// ComplexFromFloat64 builds a purely real Complex from a transcendental
// result.
func ComplexFromFloat64(f float64) (Complex, error) {
	return Complex(complex(f, 0)), nil
}

// ComplexBackend is the Backend[Complex] value wired into complex contexts.
var ComplexBackend = Backend[Complex]{
	Name:        "complex",
	Zero:        0,
	One:         1,
	Parse:       ParseComplex,
	FromFloat64: ComplexFromFloat64,
}

// ImaginaryUnit is the value bound to the constant `i` when
// Config.ComplexNumber is enabled.
var ImaginaryUnit = Complex(complex(0, 1))
