// Package rpn evaluates a Reverse Polish Notation token sequence (as
// produced by shuntingyard.InfixToRPN) against a Context, per spec.md
// §4.3.
//
// Adapted from math_engine's evaluator::rpn_eval: a values stack plus a
// single optional arg-count register, walking the RPN sequence once.
package rpn

import (
	"mathex/errs"
	"mathex/mathctx"
	"mathex/numeric"
	"mathex/stack"
	"mathex/token"
)

// Eval evaluates rpn — tokens already in postfix order — against ctx and
// returns the single resulting value.
func Eval[N numeric.Numeric[N]](rpn []token.Token[N], ctx *mathctx.Context[N]) (N, error) {
	var zero N
	var values stack.Stack[N]
	haveArgCount := false
	var argCount int

	for _, tok := range rpn {
		switch tok.Kind {
		case token.Number:
			values.Push(tok.Value)

		case token.Variable:
			n, ok := ctx.GetVariable(tok.Name)
			if !ok {
				return zero, errs.New(errs.InvalidInput, "variable %q not found", tok.Name)
			}
			values.Push(n)

		case token.Constant:
			n, ok := ctx.GetConstant(tok.Name)
			if !ok {
				return zero, errs.New(errs.InvalidInput, "constant %q not found", tok.Name)
			}
			values.Push(n)

		case token.ArgCount:
			haveArgCount = true
			argCount = tok.Count

		case token.UnaryOperator:
			fn, ok := ctx.GetUnaryFunction(tok.Name)
			if !ok {
				return zero, errs.New(errs.InvalidInput, "unary operator %q not found", tok.Name)
			}
			x, ok := values.Pop()
			if !ok {
				return zero, errs.New(errs.InvalidExpression, "not enough operands for unary operator %q", tok.Name)
			}
			result, err := fn.Call(x)
			if err != nil {
				return zero, err
			}
			values.Push(result)

		case token.BinaryOperator:
			fn, ok := ctx.GetBinaryFunction(tok.Name)
			if !ok {
				return zero, errs.New(errs.InvalidInput, "binary operator %q not found", tok.Name)
			}
			// The RPN sequence pushes lhs before rhs, so the first pop is
			// rhs and the second is lhs; call(lhs, rhs) accordingly.
			rhs, ok1 := values.Pop()
			lhs, ok2 := values.Pop()
			if !ok1 || !ok2 {
				return zero, errs.New(errs.InvalidExpression, "not enough operands for binary operator %q", tok.Name)
			}
			result, err := fn.Call(lhs, rhs)
			if err != nil {
				return zero, err
			}
			values.Push(result)

		case token.Function:
			fn, ok := ctx.GetFunction(tok.Name)
			if !ok {
				return zero, errs.New(errs.InvalidInput, "function %q not found", tok.Name)
			}
			if !haveArgCount {
				return zero, errs.New(errs.InvalidInput, "cannot evaluate function %q, unknown number of arguments", tok.Name)
			}
			n := argCount
			haveArgCount = false

			args := make([]N, 0, n)
			for i := 0; i < n; i++ {
				v, ok := values.Pop()
				if !ok {
					return zero, errs.New(errs.InvalidArgumentCount, "expected %d arguments to %q, got %d", n, tok.Name, len(args))
				}
				args = append(args, v)
			}
			// Arguments were popped last-to-first; restore call order.
			for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
				args[i], args[j] = args[j], args[i]
			}
			result, err := fn.Call(args)
			if err != nil {
				return zero, err
			}
			values.Push(result)

		default:
			return zero, errs.New(errs.InvalidInput, "unexpected token in RPN stream: %s", tok.String())
		}
	}

	if values.Len() == 1 {
		v, _ := values.Pop()
		return v, nil
	}
	return zero, errs.New(errs.InvalidExpression, "expression did not reduce to a single value")
}
