package main

import (
	"flag"
	"fmt"

	"mathex/errs"
	"mathex/evaluator"
	"mathex/mathctx"
	"mathex/numeric"
)

// backendFlags are the --decimal/--float/--unchecked/--complex/--implicit-mul
// flags shared by eval, repl and the introspection subcommands: one Config
// knob plus a choice of numeric backend, exactly as spec.md §5 describes.
type backendFlags struct {
	decimal     bool
	float       bool
	complex     bool
	unchecked   bool
	implicitMul bool
}

func (b *backendFlags) register(f *flag.FlagSet) {
	f.BoolVar(&b.decimal, "decimal", false, "use the arbitrary-precision decimal backend")
	f.BoolVar(&b.float, "float", false, "use the float64 backend")
	f.BoolVar(&b.complex, "complex", false, "use the complex128 backend")
	f.BoolVar(&b.unchecked, "unchecked", false, "use the wrapping (unchecked) int64 backend instead of the overflow-checked one")
	f.BoolVar(&b.implicitMul, "implicit-mul", false, "inject '*' between adjacent operand/grouping tokens")
}

// namedEvaluator hides the numeric backend's type parameter behind a
// fmt.Stringer result so the CLI layer can be written once instead of once
// per backend. Every numeric.Numeric type implements fmt.Stringer.
type namedEvaluator struct {
	name string
	eval func(expr string) (fmt.Stringer, error)
	ctx  interface {
		Variables() map[string]fmt.Stringer
		Constants() map[string]fmt.Stringer
		FunctionNames() []string
		OperatorNames() (binary []string, unary []string)
	}
}

// build constructs the Evaluator the flags select and wraps it behind the
// non-generic namedEvaluator facade.
func (b *backendFlags) build() (*namedEvaluator, error) {
	config := mathctx.NewConfig()
	if b.implicitMul {
		config.WithImplicitMul()
	}

	switch {
	case b.decimal:
		ev, err := evaluator.NewDecimal(config)
		if err != nil {
			return nil, err
		}
		return wrap("decimal", ev), nil
	case b.float:
		ev, err := evaluator.NewFloat64(config)
		if err != nil {
			return nil, err
		}
		return wrap("float64", ev), nil
	case b.complex:
		config.WithComplexNumber()
		ev, err := evaluator.NewComplex(config)
		if err != nil {
			return nil, err
		}
		return wrap("complex", ev), nil
	case b.unchecked:
		ev, err := evaluator.NewInt64(config)
		if err != nil {
			return nil, err
		}
		return wrap("int64", ev), nil
	default:
		ev, err := evaluator.NewCheckedInt64(config)
		if err != nil {
			return nil, err
		}
		return wrap("checked-int64", ev), nil
	}
}

// wrap adapts a concrete *evaluator.Evaluator[N] into the non-generic
// namedEvaluator facade the CLI subcommands share. N is constrained to
// numeric.Numeric[N], not just fmt.Stringer, because *mathctx.Context[N]
// itself requires numeric.Numeric[N]; Numeric[N] already embeds
// String() string, so the fmt.Stringer uses below still hold.
func wrap[N numeric.Numeric[N]](name string, ev interface {
	Eval(string) (N, error)
	Context() *mathctx.Context[N]
}) *namedEvaluator {
	return &namedEvaluator{
		name: name,
		eval: func(expr string) (fmt.Stringer, error) {
			v, err := ev.Eval(expr)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		ctx: ctxAdapter[N]{ev.Context()},
	}
}

// ctxAdapter stringifies a *mathctx.Context[N]'s variable/constant snapshots
// so namedEvaluator need not be generic.
type ctxAdapter[N numeric.Numeric[N]] struct {
	ctx *mathctx.Context[N]
}

func (c ctxAdapter[N]) Variables() map[string]fmt.Stringer {
	out := make(map[string]fmt.Stringer)
	for name, v := range c.ctx.Variables() {
		out[name] = v
	}
	return out
}

func (c ctxAdapter[N]) Constants() map[string]fmt.Stringer {
	out := make(map[string]fmt.Stringer)
	for name, v := range c.ctx.Constants() {
		out[name] = v
	}
	return out
}

func (c ctxAdapter[N]) FunctionNames() []string { return c.ctx.FunctionNames() }

func (c ctxAdapter[N]) OperatorNames() (binary []string, unary []string) {
	return c.ctx.OperatorNames()
}

// asEvalError reports whether err is an *errs.Error, for subcommands that
// want to print its Kind alongside the message.
func asEvalError(err error) (*errs.Error, bool) {
	e, ok := err.(*errs.Error)
	return e, ok
}
