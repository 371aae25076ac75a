package stdlib

import (
	"math"

	"mathex/mathctx"
	"mathex/numeric"
)

// Preload registers the full standard operator/function set on ctx: the
// arithmetic operators, the PI/E constants, sum/prod/avg, and the
// transcendental function family. If backend.Zero also satisfies
// numeric.Ordered[N] (every backend but Complex, per spec.md §4.5), the
// order-dependent functions — min/max, floor/ceil/truncate/round, sign,
// factorial — are registered too.
func Preload[N numeric.Numeric[N]](ctx *mathctx.Context[N], backend numeric.Backend[N]) error {
	if err := registerArithmetic(ctx, backend); err != nil {
		return err
	}
	if err := registerVariadic(ctx, backend); err != nil {
		return err
	}
	if err := registerMath(ctx, backend); err != nil {
		return err
	}

	pi, err := backend.FromFloat64(math.Pi)
	if err != nil {
		return err
	}
	ctx.AddConstant("PI", pi)

	e, err := backend.FromFloat64(math.E)
	if err != nil {
		return err
	}
	ctx.AddConstant("E", e)

	if _, ok := any(backend.Zero).(numeric.Ordered[N]); ok {
		if err := registerOrdered(ctx, backend); err != nil {
			return err
		}
	}

	// The imaginary unit is only meaningful for the Complex backend; N is
	// asserted against the concrete numeric.Complex type rather than
	// against Ordered/Numeric since no shared interface distinguishes it.
	if ctx.Config().ComplexNumber {
		if _, ok := any(backend.Zero).(numeric.Complex); ok {
			ctx.AddConstant("i", any(numeric.ImaginaryUnit).(N))
		}
	}
	return nil
}
