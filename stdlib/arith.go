// Package stdlib preloads the standard operator and function set spec.md
// §4.4 describes: arithmetic operators, trig/hyperbolic/log/factorial
// functions, and the PI/E constants. Preload is called once by a Context
// factory for any numeric backend satisfying numeric.Numeric[N]; functions
// that also require numeric.Ordered[N] (min/max, floor/ceil/trunc/round,
// sign, factorial) are only registered when the backend implements it,
// mirroring the complex backend's exclusion in spec.md §4.5.
package stdlib

import (
	"mathex/mathctx"
	"mathex/numeric"
	"mathex/registry"
)

type addOp[N numeric.Numeric[N]] struct{}

func (addOp[N]) Name() string                          { return "+" }
func (addOp[N]) Precedence() registry.Precedence       { return registry.Low }
func (addOp[N]) Associativity() registry.Associativity { return registry.Left }
func (addOp[N]) Call(lhs, rhs N) (N, error)            { return lhs.Add(rhs) }

type subOp[N numeric.Numeric[N]] struct{}

func (subOp[N]) Name() string                          { return "-" }
func (subOp[N]) Precedence() registry.Precedence       { return registry.Low }
func (subOp[N]) Associativity() registry.Associativity { return registry.Left }
func (subOp[N]) Call(lhs, rhs N) (N, error)            { return lhs.Sub(rhs) }

type mulOp[N numeric.Numeric[N]] struct{}

func (mulOp[N]) Name() string                          { return "*" }
func (mulOp[N]) Precedence() registry.Precedence       { return registry.Medium }
func (mulOp[N]) Associativity() registry.Associativity { return registry.Left }
func (mulOp[N]) Call(lhs, rhs N) (N, error)            { return lhs.Mul(rhs) }

type divOp[N numeric.Numeric[N]] struct{}

func (divOp[N]) Name() string                          { return "/" }
func (divOp[N]) Precedence() registry.Precedence       { return registry.Medium }
func (divOp[N]) Associativity() registry.Associativity { return registry.Left }
func (divOp[N]) Call(lhs, rhs N) (N, error)            { return lhs.Div(rhs) }

type modOp[N numeric.Numeric[N]] struct{}

func (modOp[N]) Name() string                          { return "mod" }
func (modOp[N]) Precedence() registry.Precedence       { return registry.Medium }
func (modOp[N]) Associativity() registry.Associativity { return registry.Left }
func (modOp[N]) Call(lhs, rhs N) (N, error)            { return lhs.Mod(rhs) }

type powOp[N numeric.Numeric[N]] struct{}

func (powOp[N]) Name() string                          { return "^" }
func (powOp[N]) Precedence() registry.Precedence       { return registry.High }
func (powOp[N]) Associativity() registry.Associativity { return registry.Right }
func (powOp[N]) Call(lhs, rhs N) (N, error)            { return lhs.Pow(rhs) }

type unaryPlus[N numeric.Numeric[N]] struct{}

func (unaryPlus[N]) Name() string               { return "+" }
func (unaryPlus[N]) Notation() registry.Notation { return registry.Prefix }
func (unaryPlus[N]) Call(x N) (N, error)         { return x, nil }

type unaryMinus[N numeric.Numeric[N]] struct{ backend numeric.Backend[N] }

func (u unaryMinus[N]) Name() string               { return "-" }
func (u unaryMinus[N]) Notation() registry.Notation { return registry.Prefix }
func (u unaryMinus[N]) Call(x N) (N, error)         { return u.backend.Zero.Sub(x) }

func registerArithmetic[N numeric.Numeric[N]](ctx *mathctx.Context[N], backend numeric.Backend[N]) error {
	for _, op := range []registry.BinaryFunction[N]{
		addOp[N]{}, subOp[N]{}, mulOp[N]{}, divOp[N]{}, modOp[N]{}, powOp[N]{},
	} {
		if err := ctx.AddBinaryFunction(op); err != nil {
			return err
		}
	}
	if err := ctx.AddUnaryFunction(unaryPlus[N]{}); err != nil {
		return err
	}
	return ctx.AddUnaryFunction(unaryMinus[N]{backend: backend})
}
