// Package shuntingyard converts an infix token sequence into Reverse Polish
// Notation using Dijkstra's shunting-yard algorithm, generalized for
// variadic function calls, prefix/postfix unary operators, configurable
// grouping pairs and implicit multiplication (spec.md §4.2).
//
// Adapted from math_engine's evaluator::shunting_yard module: push_number,
// push_unary_function, push_binary_function, push_grouping_close, push_comma
// and check_comma_position translate almost one-for-one, with Rust's Vec
// stacks replaced by stack.Stack[T].
package shuntingyard

import (
	"mathex/errs"
	"mathex/mathctx"
	"mathex/numeric"
	"mathex/registry"
	"mathex/stack"
	"mathex/token"
)

// InfixToRPN converts tokens (as produced by lexer.Tokenize) from infix to
// postfix order, resolving operator precedence, associativity, grouping and
// function-call argument counts against ctx.
func InfixToRPN[N numeric.Numeric[N]](tokens []token.Token[N], ctx *mathctx.Context[N]) ([]token.Token[N], error) {
	y := &yard[N]{ctx: ctx, tokens: tokens}
	return y.run()
}

type yard[N numeric.Numeric[N]] struct {
	ctx           *mathctx.Context[N]
	tokens        []token.Token[N]
	output        []token.Token[N]
	operators     stack.Stack[token.Token[N]]
	argCount      stack.Stack[int]
	groupingCount stack.Stack[int]
}

func (y *yard[N]) run() ([]token.Token[N], error) {
	for pos, tok := range y.tokens {
		var err error
		switch {
		case tok.IsOperand():
			y.pushNumber(tok)
		case tok.IsBinaryOperator():
			err = y.pushBinaryFunction(tok)
		case tok.IsUnaryOperator():
			err = y.pushUnaryFunction(tok)
		case tok.IsFunction():
			err = y.pushFunction(pos, tok)
		case tok.IsGroupingOpen():
			y.operators.Push(tok)
			if y.argCount.Len() > 0 {
				y.groupingCount.Push(pos)
			}
		case tok.IsGroupingClose():
			err = y.pushGroupingClose(pos, tok)
		case tok.IsComma():
			if err = y.checkCommaPosition(pos); err == nil {
				err = y.pushComma()
			}
		default:
			err = errs.New(errs.InvalidInput, "invalid token: %s", tok.String())
		}
		if err != nil {
			return nil, err
		}

		if y.ctx.Config().ImplicitMul {
			y.maybeInjectImplicitMul(pos, tok)
		}
	}

	for {
		t, ok := y.operators.Pop()
		if !ok {
			break
		}
		if t.IsGroupingOpen() || t.IsGroupingClose() {
			return nil, errs.New(errs.InvalidExpression, "misplaced parentheses")
		}
		y.output = append(y.output, t)
	}

	return y.output, nil
}

// pushNumber pushes an operand token to the output and, mirroring the
// source's push_number, immediately resolves at most one pending unary
// operator directly beneath it on the operator stack — the mechanism that
// applies a prefix unary to the operand right next to it (e.g. "-5") without
// waiting for a later binary operator to force the pop.
func (y *yard[N]) pushNumber(tok token.Token[N]) {
	y.output = append(y.output, tok)
	if top, ok := y.operators.Peek(); ok && top.IsUnaryOperator() {
		if _, exists := y.ctx.GetUnaryFunction(top.Name); exists {
			y.operators.Pop()
			y.output = append(y.output, top)
		}
	}
}

func (y *yard[N]) pushUnaryFunction(tok token.Token[N]) error {
	unary, ok := y.ctx.GetUnaryFunction(tok.Name)
	if !ok {
		return errs.New(errs.InvalidInput, "unary operator %q not found", tok.Name)
	}
	switch unary.Notation() {
	case registry.Prefix:
		y.operators.Push(tok)
	case registry.Postfix:
		if len(y.output) == 0 {
			return errs.New(errs.InvalidExpression, "misplaced unary operator")
		}
		y.output = append(y.output, tok)
	}
	return nil
}

func (y *yard[N]) pushBinaryFunction(tok token.Token[N]) error {
	operator, ok := y.ctx.GetBinaryFunction(tok.Name)
	if !ok {
		return errs.New(errs.InvalidInput, "binary operator %q not found", tok.Name)
	}

	for {
		top, ok := y.operators.Peek()
		if !ok || top.IsGroupingOpen() {
			break
		}
		if top.IsFunction() {
			y.operators.Pop()
			y.output = append(y.output, top)
			continue
		}
		if !top.IsBinaryOperator() {
			break
		}
		topOperator, ok := y.ctx.GetBinaryFunction(top.Name)
		if !ok {
			break
		}
		if topOperator.Precedence() > operator.Precedence() ||
			(topOperator.Precedence() == operator.Precedence() && topOperator.Associativity() == registry.Left) {
			y.operators.Pop()
			y.output = append(y.output, top)
			continue
		}
		break
	}

	y.operators.Push(tok)
	return nil
}

// pushFunction enforces the function call-site grouping rule (spec.md
// §4.2): unless Config.CustomFunctionCall is set, a function name must be
// immediately followed by the literal '(' grouping-open.
func (y *yard[N]) pushFunction(pos int, tok token.Token[N]) error {
	if !y.ctx.Config().CustomFunctionCall {
		if pos+1 >= len(y.tokens) || !y.tokens[pos+1].ContainsSymbol('(') {
			return errs.New(errs.InvalidInput, "function arguments of %q are not within a parentheses", tok.Name)
		}
	}
	y.argCount.Push(0)
	y.operators.Push(tok)
	return nil
}

func (y *yard[N]) pushGroupingClose(pos int, tok token.Token[N]) error {
	isGroupOpen := false

	for {
		t, ok := y.operators.Pop()
		if !ok {
			break
		}
		if !t.IsGroupingOpen() {
			y.output = append(y.output, t)
			continue
		}
		if sym, ok := y.ctx.Config().GroupingSymbolFor(t.Symbol); ok && sym.Close == tok.Symbol {
			isGroupOpen = true
			if y.argCount.Len() > 0 {
				if top, ok := y.operators.Peek(); ok && top.IsFunction() {
					count, _ := y.argCount.Pop()
					y.output = append(y.output, token.NewArgCount[N](count+1))
					y.operators.Pop()
					y.output = append(y.output, top)
				}
			}
		}
		break
	}

	if !isGroupOpen {
		return errs.New(errs.InvalidExpression, "misplaced grouping symbol")
	}

	// Detect empty grouping symbols not directly owned by a function call,
	// e.g. "Random(())" or "()+2".
	if pos > 0 {
		prev := y.tokens[pos-1]
		if prev.IsGroupingOpen() {
			if sym, ok := y.ctx.Config().GroupingSymbolFor(tok.Symbol); ok && sym.Open == prev.Symbol {
				if pos < 2 || !y.tokens[pos-2].IsFunction() {
					return errs.New(errs.InvalidInput, "empty grouping symbols: %c%c", prev.Symbol, tok.Symbol)
				}
			}
		}
	}

	if y.argCount.Len() > 0 {
		y.groupingCount.Pop()
	}
	return nil
}

func (y *yard[N]) pushComma() error {
	if y.argCount.Len() == 0 {
		return errs.New(errs.InvalidExpression, "comma found but not inside a function call")
	}
	n, _ := y.argCount.Pop()
	y.argCount.Push(n + 1)

	isGroupOpen := false
	for {
		top, ok := y.operators.Peek()
		if !ok {
			break
		}
		if top.IsGroupingOpen() {
			isGroupOpen = true
			break
		}
		y.operators.Pop()
		y.output = append(y.output, top)
	}

	if !isGroupOpen {
		return errs.New(errs.InvalidExpression, "misplaced comma")
	}
	return nil
}

// checkCommaPosition rejects commas that cannot belong to a function's
// argument list: leading commas, "(,", ",)" and commas nested inside plain
// grouping symbols wrapped around a function call's arguments, e.g.
// "Sum((10, 2, 3))".
func (y *yard[N]) checkCommaPosition(pos int) error {
	if pos == 0 {
		return errs.New(errs.InvalidInput, "misplaced comma")
	}
	if y.tokens[pos-1].IsGroupingOpen() {
		return errs.New(errs.InvalidInput, "misplaced comma: \"(,\"")
	}
	if pos+1 < len(y.tokens) && y.tokens[pos+1].IsGroupingClose() {
		return errs.New(errs.InvalidInput, "misplaced comma: \",)\"")
	}
	if y.groupingCount.Len() > 0 {
		top, _ := y.groupingCount.Peek()
		if top == 0 || !y.tokens[top-1].IsFunction() {
			return errs.New(errs.InvalidInput, "misplaced comma")
		}
	}
	return nil
}

// maybeInjectImplicitMul inserts a synthetic '*' BinaryOperator onto the
// operator stack between a producer token (a number, or a grouping close)
// and the consumer token that directly follows it, per spec.md §4.2's
// implicit-multiplication rule: "2Max(...)", "2PI", "2x", "2(4)", "(2)(4)".
func (y *yard[N]) maybeInjectImplicitMul(pos int, tok token.Token[N]) {
	if pos+1 >= len(y.tokens) {
		return
	}
	next := y.tokens[pos+1]

	switch {
	case tok.IsNumber():
		if next.IsFunction() || next.IsConstant() || next.IsVariable() || next.IsGroupingOpen() {
			y.operators.Push(token.NewBinaryOperator[N]("*"))
		}
	case tok.IsGroupingClose():
		if next.IsNumber() || next.IsVariable() || next.IsConstant() || next.IsFunction() || next.IsGroupingOpen() {
			y.operators.Push(token.NewBinaryOperator[N]("*"))
		}
	}
}
