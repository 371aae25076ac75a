package stdlib

import (
	"mathex/errs"
	"mathex/mathctx"
	"mathex/numeric"
)

// less reports a < b for any backend whose concrete value happens to
// implement numeric.Ordered[N]. Go generics cannot express "N satisfies
// Ordered[N] only sometimes" as a constraint on a single function, since a
// type parameter's constraint is fixed at the call site; functions that are
// only meaningful for ordered backends (max, min, abs, sign, factorial)
// instead take the weaker Numeric[N] constraint and assert
// Ordered[N] dynamically here. Preload only ever registers them once it has
// confirmed the assertion holds for the backend in hand, so the error path
// below is unreachable in practice.
func less[N numeric.Numeric[N]](a, b N) (bool, error) {
	ord, ok := any(a).(numeric.Ordered[N])
	if !ok {
		return false, errs.New(errs.InvalidInput, "ordering is not defined for this numeric backend")
	}
	return ord.Less(b), nil
}

type sumFn[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (f sumFn[N]) Name() string { return "sum" }
func (f sumFn[N]) Call(args []N) (N, error) {
	result := f.backend.Zero
	for _, a := range args {
		var err error
		result, err = result.Add(a)
		if err != nil {
			return f.backend.Zero, err
		}
	}
	return result, nil
}

type prodFn[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (f prodFn[N]) Name() string { return "prod" }
func (f prodFn[N]) Call(args []N) (N, error) {
	result := f.backend.One
	for _, a := range args {
		var err error
		result, err = result.Mul(a)
		if err != nil {
			return f.backend.Zero, err
		}
	}
	return result, nil
}

type avgFn[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (f avgFn[N]) Name() string { return "avg" }
func (f avgFn[N]) Call(args []N) (N, error) {
	if len(args) == 0 {
		return f.backend.Zero, errs.New(errs.InvalidArgumentCount, "avg requires at least one argument")
	}
	sum := f.backend.Zero
	for _, a := range args {
		var err error
		sum, err = sum.Add(a)
		if err != nil {
			return f.backend.Zero, err
		}
	}
	count, err := f.backend.FromFloat64(float64(len(args)))
	if err != nil {
		return f.backend.Zero, err
	}
	return sum.Div(count)
}

type maxFn[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (f maxFn[N]) Name() string { return "max" }
func (f maxFn[N]) Call(args []N) (N, error) {
	if len(args) == 0 {
		return f.backend.Zero, errs.New(errs.InvalidArgumentCount, "max requires at least one argument")
	}
	best := args[0]
	for _, a := range args[1:] {
		lt, err := less(best, a)
		if err != nil {
			return f.backend.Zero, err
		}
		if lt {
			best = a
		}
	}
	return best, nil
}

type minFn[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (f minFn[N]) Name() string { return "min" }
func (f minFn[N]) Call(args []N) (N, error) {
	if len(args) == 0 {
		return f.backend.Zero, errs.New(errs.InvalidArgumentCount, "min requires at least one argument")
	}
	best := args[0]
	for _, a := range args[1:] {
		lt, err := less(a, best)
		if err != nil {
			return f.backend.Zero, err
		}
		if lt {
			best = a
		}
	}
	return best, nil
}

func registerVariadic[N numeric.Numeric[N]](ctx *mathctx.Context[N], backend numeric.Backend[N]) error {
	if err := ctx.AddFunction(sumFn[N]{backend}); err != nil {
		return err
	}
	if err := ctx.AddFunction(prodFn[N]{backend}); err != nil {
		return err
	}
	return ctx.AddFunction(avgFn[N]{backend})
}

// registerOrdered registers the functions that require a real total order:
// min, max, abs, floor/ceil/truncate/round, sign, and factorial. Preload
// only calls this once it has confirmed backend.Zero implements
// numeric.Ordered[N]; see the note on less() above for why these functions
// still carry the weaker Numeric[N] constraint.
func registerOrdered[N numeric.Numeric[N]](ctx *mathctx.Context[N], backend numeric.Backend[N]) error {
	if err := ctx.AddFunction(maxFn[N]{backend}); err != nil {
		return err
	}
	if err := ctx.AddFunction(minFn[N]{backend}); err != nil {
		return err
	}
	if err := ctx.AddFunction(absFn[N]{backend}); err != nil {
		return err
	}
	if err := ctx.AddFunction(newRoundingFn[N]("floor", backend, floorRound)); err != nil {
		return err
	}
	if err := ctx.AddFunction(newRoundingFn[N]("ceil", backend, ceilRound)); err != nil {
		return err
	}
	if err := ctx.AddFunction(newRoundingFn[N]("truncate", backend, truncRound)); err != nil {
		return err
	}
	if err := ctx.AddFunction(newRoundingFn[N]("round", backend, nearestRound)); err != nil {
		return err
	}
	if err := ctx.AddFunction(signFn[N]{backend}); err != nil {
		return err
	}
	return ctx.AddUnaryFunction(factorialFn[N]{backend})
}
