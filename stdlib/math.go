package stdlib

import (
	"math"

	"mathex/errs"
	"mathex/mathctx"
	"mathex/numeric"
	"mathex/registry"
)

// floatFn adapts a plain float64 -> float64 function into a registry.Function
// by round-tripping the operand through the backend's Float64/FromFloat64
// conversions (spec.md §4.5's "conversions to/from a 64-bit floating-point
// intermediate, for use by transcendental operators").
type floatFn[N numeric.Numeric[N]] struct {
	name    string
	backend numeric.Backend[N]
	f       func(float64) float64
}

func (u floatFn[N]) Name() string { return u.name }
func (u floatFn[N]) Call(args []N) (N, error) {
	if len(args) != 1 {
		return u.backend.Zero, errs.New(errs.InvalidArgumentCount, "%s expects exactly 1 argument, got %d", u.name, len(args))
	}
	x, err := args[0].Float64()
	if err != nil {
		return u.backend.Zero, err
	}
	return u.backend.FromFloat64(u.f(x))
}

// degToRad converts the degree convention direct trig functions use to the
// radian convention math.* expects, per spec.md §4.4: "Angle inputs are
// degrees for direct trig... inverse functions return radians."
func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func reciprocal(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 { return 1 / f(x) }
}

func trigDeg(f func(float64) float64) func(float64) float64 {
	return func(deg float64) float64 { return f(degToRad(deg)) }
}

// registerMath wires sqrt/ln/exp/log and the trig/hyperbolic family. These
// do not require numeric.Ordered[N]: they only need the Float64 round-trip
// every Numeric[N] backend provides, so they are registered unconditionally
// (including for the complex backend).
func registerMath[N numeric.Numeric[N]](ctx *mathctx.Context[N], backend numeric.Backend[N]) error {
	plain := map[string]func(float64) float64{
		"sqrt": math.Sqrt,
		"ln":   math.Log,
		"exp":  math.Exp,

		"sin": trigDeg(math.Sin),
		"cos": trigDeg(math.Cos),
		"tan": trigDeg(math.Tan),
		"csc": trigDeg(reciprocal(math.Sin)),
		"sec": trigDeg(reciprocal(math.Cos)),
		"cot": trigDeg(reciprocal(math.Tan)),

		"asin": math.Asin,
		"acos": math.Acos,
		"atan": math.Atan,
		"acsc": func(x float64) float64 { return math.Asin(1 / x) },
		"asec": func(x float64) float64 { return math.Acos(1 / x) },
		"acot": func(x float64) float64 { return math.Atan(1 / x) },

		"sinh": trigDeg(math.Sinh),
		"cosh": trigDeg(math.Cosh),
		"tanh": trigDeg(math.Tanh),
		"csch": trigDeg(reciprocal(math.Sinh)),
		"sech": trigDeg(reciprocal(math.Cosh)),
		"coth": trigDeg(reciprocal(math.Tanh)),

		"asinh": math.Asinh,
		"acosh": math.Acosh,
		"atanh": math.Atanh,
		"acsch": func(x float64) float64 { return math.Asinh(1 / x) },
		"asech": func(x float64) float64 { return math.Acosh(1 / x) },
		"acoth": func(x float64) float64 { return math.Atanh(1 / x) },
	}
	for name, f := range plain {
		if err := ctx.AddFunction(floatFn[N]{name: name, backend: backend, f: f}); err != nil {
			return err
		}
	}
	return ctx.AddFunction(logFn[N]{backend})
}

type logFn[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (l logFn[N]) Name() string { return "log" }
func (l logFn[N]) Call(args []N) (N, error) {
	switch len(args) {
	case 1:
		x, err := args[0].Float64()
		if err != nil {
			return l.backend.Zero, err
		}
		return l.backend.FromFloat64(math.Log10(x))
	case 2:
		x, err := args[0].Float64()
		if err != nil {
			return l.backend.Zero, err
		}
		base, err := args[1].Float64()
		if err != nil {
			return l.backend.Zero, err
		}
		return l.backend.FromFloat64(math.Log(x) / math.Log(base))
	default:
		return l.backend.Zero, errs.New(errs.InvalidArgumentCount, "log expects 1 or 2 arguments, got %d", len(args))
	}
}

type absFn[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (a absFn[N]) Name() string { return "abs" }
func (a absFn[N]) Call(args []N) (N, error) {
	if len(args) != 1 {
		return a.backend.Zero, errs.New(errs.InvalidArgumentCount, "abs expects exactly 1 argument, got %d", len(args))
	}
	x := args[0]
	neg, err := less(x, a.backend.Zero)
	if err != nil {
		return a.backend.Zero, err
	}
	if neg {
		return a.backend.Zero.Sub(x)
	}
	return x, nil
}

func floorRound(x float64) float64   { return math.Floor(x) }
func ceilRound(x float64) float64    { return math.Ceil(x) }
func truncRound(x float64) float64   { return math.Trunc(x) }
func nearestRound(x float64) float64 { return math.Round(x) }

type roundingFn[N numeric.Numeric[N]] struct {
	name    string
	backend numeric.Backend[N]
	f       func(float64) float64
}

func newRoundingFn[N numeric.Numeric[N]](name string, backend numeric.Backend[N], f func(float64) float64) roundingFn[N] {
	return roundingFn[N]{name: name, backend: backend, f: f}
}

func (r roundingFn[N]) Name() string { return r.name }
func (r roundingFn[N]) Call(args []N) (N, error) {
	if len(args) != 1 {
		return r.backend.Zero, errs.New(errs.InvalidArgumentCount, "%s expects exactly 1 argument, got %d", r.name, len(args))
	}
	x, err := args[0].Float64()
	if err != nil {
		return r.backend.Zero, err
	}
	return r.backend.FromFloat64(r.f(x))
}

type signFn[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (s signFn[N]) Name() string { return "sign" }
func (s signFn[N]) Call(args []N) (N, error) {
	if len(args) != 1 {
		return s.backend.Zero, errs.New(errs.InvalidArgumentCount, "sign expects exactly 1 argument, got %d", len(args))
	}
	x := args[0]
	zero := s.backend.Zero
	neg, err := less(x, zero)
	if err != nil {
		return zero, err
	}
	switch {
	case x.Equal(zero):
		return zero, nil
	case neg:
		return s.backend.FromFloat64(-1)
	default:
		return s.backend.FromFloat64(1)
	}
}

// factorialFn implements postfix `!`: for non-negative integer operands it
// computes the product iteratively; for non-integer positive operands it
// extends via the Gamma function (n! = Gamma(n+1)), per spec.md §4.4.
type factorialFn[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (f factorialFn[N]) Name() string                { return "!" }
func (f factorialFn[N]) Notation() registry.Notation { return registry.Postfix }
func (f factorialFn[N]) Call(x N) (N, error) {
	zero := f.backend.Zero
	neg, err := less(x, zero)
	if err != nil {
		return zero, err
	}
	if neg {
		return zero, errs.New(errs.NegativeValue, "factorial of negative value: %s", x)
	}
	fv, err := x.Float64()
	if err != nil {
		return zero, err
	}
	if fv == math.Trunc(fv) {
		result := f.backend.One
		for i := int64(2); float64(i) <= fv; i++ {
			term, err := f.backend.FromFloat64(float64(i))
			if err != nil {
				return zero, err
			}
			result, err = result.Mul(term)
			if err != nil {
				return zero, err
			}
		}
		return result, nil
	}
	return f.backend.FromFloat64(math.Gamma(fv + 1))
}
