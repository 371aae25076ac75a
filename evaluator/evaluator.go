// Package evaluator exposes the evaluator's public entry points: Eval for a
// raw infix expression string and EvalTokens for an already-tokenized
// sequence, plus the context-construction helpers spec.md §5 describes
// (checked/unchecked machine-int, float, decimal and complex contexts,
// preloaded with the standard library of stdlib).
//
// Adapted from math_engine's evaluator::Evaluator<N, C>: Go has no default
// type parameter, so New is split per concrete backend (NewCheckedInt64,
// NewFloat64, ...) instead of a single generic constructor defaulting its
// Context type.
package evaluator

import (
	"mathex/lexer"
	"mathex/mathctx"
	"mathex/numeric"
	"mathex/rpn"
	"mathex/shuntingyard"
	"mathex/stdlib"
	"mathex/token"
)

// Evaluator pairs a Context with the tokenize -> shunting-yard -> RPN
// pipeline spec.md §4 describes.
type Evaluator[N numeric.Numeric[N]] struct {
	ctx *mathctx.Context[N]
}

// WithContext builds an Evaluator around an already-configured Context,
// e.g. one a caller populated with custom variables or functions.
func WithContext[N numeric.Numeric[N]](ctx *mathctx.Context[N]) *Evaluator[N] {
	return &Evaluator[N]{ctx: ctx}
}

// Context returns the Evaluator's underlying Context for inspection or
// mutation (registering variables, constants or functions before Eval).
func (e *Evaluator[N]) Context() *mathctx.Context[N] { return e.ctx }

// Eval tokenizes, converts to RPN and evaluates expression in one pass.
func (e *Evaluator[N]) Eval(expression string) (N, error) {
	tokens, err := lexer.Tokenize(expression, e.ctx)
	if err != nil {
		var zero N
		return zero, err
	}
	return e.EvalTokens(tokens)
}

// EvalTokens converts an already-tokenized infix sequence to RPN and
// evaluates it.
func (e *Evaluator[N]) EvalTokens(tokens []token.Token[N]) (N, error) {
	postfix, err := shuntingyard.InfixToRPN(tokens, e.ctx)
	if err != nil {
		var zero N
		return zero, err
	}
	return rpn.Eval(postfix, e.ctx)
}

// preloaded builds a Context for backend under config and registers the
// standard operator/function library on it.
func preloaded[N numeric.Numeric[N]](backend numeric.Backend[N], config *mathctx.Config) (*mathctx.Context[N], error) {
	ctx := mathctx.New(backend, config)
	if err := stdlib.Preload(ctx, backend); err != nil {
		return nil, err
	}
	return ctx, nil
}

// NewCheckedInt64 returns an Evaluator over the overflow-checked int64
// backend, preloaded with the standard library, using config (or a default
// Config if nil).
func NewCheckedInt64(config *mathctx.Config) (*Evaluator[numeric.CheckedInt64], error) {
	if config == nil {
		config = mathctx.NewConfig()
	}
	ctx, err := preloaded(numeric.CheckedInt64Backend, config)
	if err != nil {
		return nil, err
	}
	return WithContext(ctx), nil
}

// NewInt64 returns an Evaluator over the wrapping/unchecked int64 backend.
func NewInt64(config *mathctx.Config) (*Evaluator[numeric.Int64], error) {
	if config == nil {
		config = mathctx.NewConfig()
	}
	ctx, err := preloaded(numeric.Int64Backend, config)
	if err != nil {
		return nil, err
	}
	return WithContext(ctx), nil
}

// NewFloat64 returns an Evaluator over the float64 backend.
func NewFloat64(config *mathctx.Config) (*Evaluator[numeric.Float64], error) {
	if config == nil {
		config = mathctx.NewConfig()
	}
	ctx, err := preloaded(numeric.Float64Backend, config)
	if err != nil {
		return nil, err
	}
	return WithContext(ctx), nil
}

// NewDecimal returns an Evaluator over the arbitrary-precision decimal
// backend.
func NewDecimal(config *mathctx.Config) (*Evaluator[numeric.Decimal], error) {
	if config == nil {
		config = mathctx.NewConfig()
	}
	ctx, err := preloaded(numeric.DecimalBackend, config)
	if err != nil {
		return nil, err
	}
	return WithContext(ctx), nil
}

// NewComplex returns an Evaluator over the complex128 backend. Complex does
// not implement numeric.Ordered, so order-dependent functions (min, max,
// floor, ceil, truncate, round, sign, factorial) are not registered on its
// Context; callers who need the imaginary unit `i` recognized by the
// tokenizer should pass a config built with WithComplexNumber().
func NewComplex(config *mathctx.Config) (*Evaluator[numeric.Complex], error) {
	if config == nil {
		config = mathctx.NewConfig().WithComplexNumber()
	}
	ctx, err := preloaded(numeric.ComplexBackend, config)
	if err != nil {
		return nil, err
	}
	return WithContext(ctx), nil
}
