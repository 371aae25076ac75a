package rpn

import (
	"testing"

	"mathex/mathctx"
	"mathex/numeric"
	"mathex/shuntingyard"
	"mathex/stdlib"
	"mathex/token"
)

func testContext(t *testing.T) *mathctx.Context[numeric.Int64] {
	t.Helper()
	ctx := mathctx.New(numeric.Int64Backend, mathctx.NewConfig())
	if err := stdlib.Preload(ctx, numeric.Int64Backend); err != nil {
		t.Fatalf("stdlib.Preload: %v", err)
	}
	return ctx
}

func evalInfix(t *testing.T, ctx *mathctx.Context[numeric.Int64], infix []token.Token[numeric.Int64]) numeric.Int64 {
	t.Helper()
	rpnTokens, err := shuntingyard.InfixToRPN(infix, ctx)
	if err != nil {
		t.Fatalf("InfixToRPN: %v", err)
	}
	result, err := Eval(rpnTokens, ctx)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	return result
}

func TestEvalSimpleSum(t *testing.T) {
	ctx := testContext(t)
	// 3 + 2
	infix := []token.Token[numeric.Int64]{
		token.NewNumber(numeric.Int64(3)),
		token.NewBinaryOperator[numeric.Int64]("+"),
		token.NewNumber(numeric.Int64(2)),
	}
	if got := evalInfix(t, ctx, infix); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestEvalRightAssociativePow(t *testing.T) {
	ctx := testContext(t)
	// 2 ^ 3 ^ 2 = 2 ^ (3 ^ 2) = 512
	infix := []token.Token[numeric.Int64]{
		token.NewNumber(numeric.Int64(2)),
		token.NewBinaryOperator[numeric.Int64]("^"),
		token.NewNumber(numeric.Int64(3)),
		token.NewBinaryOperator[numeric.Int64]("^"),
		token.NewNumber(numeric.Int64(2)),
	}
	if got := evalInfix(t, ctx, infix); got != 512 {
		t.Errorf("got %v, want 512", got)
	}
}

func TestEvalGroupedPow(t *testing.T) {
	ctx := testContext(t)
	// (2 ^ 3) ^ 4 = 4096
	infix := []token.Token[numeric.Int64]{
		token.NewGroupingOpen[numeric.Int64]('('),
		token.NewNumber(numeric.Int64(2)),
		token.NewBinaryOperator[numeric.Int64]("^"),
		token.NewNumber(numeric.Int64(3)),
		token.NewGroupingClose[numeric.Int64](')'),
		token.NewBinaryOperator[numeric.Int64]("^"),
		token.NewNumber(numeric.Int64(4)),
	}
	if got := evalInfix(t, ctx, infix); got != 4096 {
		t.Errorf("got %v, want 4096", got)
	}
}

func TestEvalUsingVariable(t *testing.T) {
	ctx := testContext(t)
	if err := ctx.SetVariable("x", 10); err != nil {
		t.Fatalf("SetVariable: %v", err)
	}
	// x + 2 = 12
	infix := []token.Token[numeric.Int64]{
		token.NewVariable[numeric.Int64]("x"),
		token.NewBinaryOperator[numeric.Int64]("+"),
		token.NewNumber(numeric.Int64(2)),
	}
	if got := evalInfix(t, ctx, infix); got != 12 {
		t.Errorf("got %v, want 12", got)
	}
}

func TestEvalFunctionCall(t *testing.T) {
	ctx := testContext(t)
	// max(10, 2) + min(10, 2) = 12
	infix := []token.Token[numeric.Int64]{
		token.NewFunction[numeric.Int64]("max"),
		token.NewGroupingOpen[numeric.Int64]('('),
		token.NewNumber(numeric.Int64(10)),
		token.NewComma[numeric.Int64](),
		token.NewNumber(numeric.Int64(2)),
		token.NewGroupingClose[numeric.Int64](')'),
		token.NewBinaryOperator[numeric.Int64]("+"),
		token.NewFunction[numeric.Int64]("min"),
		token.NewGroupingOpen[numeric.Int64]('('),
		token.NewNumber(numeric.Int64(10)),
		token.NewComma[numeric.Int64](),
		token.NewNumber(numeric.Int64(2)),
		token.NewGroupingClose[numeric.Int64](')'),
	}
	if got := evalInfix(t, ctx, infix); got != 12 {
		t.Errorf("got %v, want 12", got)
	}
}

func TestEvalUnknownVariableError(t *testing.T) {
	ctx := testContext(t)
	infix := []token.Token[numeric.Int64]{token.NewVariable[numeric.Int64]("y")}
	if _, err := Eval(infix, ctx); err == nil {
		t.Error("expected an error for an unbound variable")
	}
}

func TestEvalNotEnoughOperandsError(t *testing.T) {
	ctx := testContext(t)
	infix := []token.Token[numeric.Int64]{
		token.NewNumber(numeric.Int64(1)),
		token.NewBinaryOperator[numeric.Int64]("+"),
	}
	if _, err := Eval(infix, ctx); err == nil {
		t.Error("expected an error when the RPN stream has too few operands")
	}
}
