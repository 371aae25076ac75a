package shuntingyard

import (
	"testing"

	"mathex/mathctx"
	"mathex/numeric"
	"mathex/stdlib"
	"mathex/token"
)

func testContext(t *testing.T, config *mathctx.Config) *mathctx.Context[numeric.Int64] {
	t.Helper()
	ctx := mathctx.New(numeric.Int64Backend, config)
	if err := stdlib.Preload(ctx, numeric.Int64Backend); err != nil {
		t.Fatalf("stdlib.Preload: %v", err)
	}
	return ctx
}

func assertRPN(t *testing.T, in []token.Token[numeric.Int64], ctx *mathctx.Context[numeric.Int64], want []token.Token[numeric.Int64]) {
	t.Helper()
	got, err := InfixToRPN(in, ctx)
	if err != nil {
		t.Fatalf("InfixToRPN error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("InfixToRPN = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Kind != want[i].Kind || got[i].Name != want[i].Name || got[i].Value != want[i].Value {
			t.Errorf("InfixToRPN[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func num(n int64) token.Token[numeric.Int64] { return token.NewNumber(numeric.Int64(n)) }
func bin(name string) token.Token[numeric.Int64] { return token.NewBinaryOperator[numeric.Int64](name) }
func un(name string) token.Token[numeric.Int64]  { return token.NewUnaryOperator[numeric.Int64](name) }
func fn(name string) token.Token[numeric.Int64]  { return token.NewFunction[numeric.Int64](name) }
func open(c rune) token.Token[numeric.Int64]     { return token.NewGroupingOpen[numeric.Int64](c) }
func closeT(c rune) token.Token[numeric.Int64]   { return token.NewGroupingClose[numeric.Int64](c) }
func comma() token.Token[numeric.Int64]          { return token.NewComma[numeric.Int64]() }
func argc(n int) token.Token[numeric.Int64]      { return token.NewArgCount[numeric.Int64](n) }

func TestUnaryOps(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	// -(+10) -> 10 + -
	in := []token.Token[numeric.Int64]{un("-"), open('('), un("+"), num(10), closeT(')')}
	want := []token.Token[numeric.Int64]{num(10), un("+"), un("-")}
	assertRPN(t, in, ctx, want)
}

func TestBinaryOpsSimple(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	in := []token.Token[numeric.Int64]{num(3), bin("+"), num(2)}
	want := []token.Token[numeric.Int64]{num(3), num(2), bin("+")}
	assertRPN(t, in, ctx, want)
}

func TestBinaryOpsPrecedence(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	// 2 + 3 * 5 -> 2 3 5 * +
	in := []token.Token[numeric.Int64]{num(2), bin("+"), num(3), bin("*"), num(5)}
	want := []token.Token[numeric.Int64]{num(2), num(3), num(5), bin("*"), bin("+")}
	assertRPN(t, in, ctx, want)
}

func TestBinaryOpsRightAssociativePow(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	// 2 ^ 3 ^ 4 - 1 -> 2 3 4 ^ ^ 1 -
	in := []token.Token[numeric.Int64]{
		num(2), bin("^"), num(3), bin("^"), num(4), bin("-"), num(1),
	}
	want := []token.Token[numeric.Int64]{
		num(2), num(3), num(4), bin("^"), bin("^"), num(1), bin("-"),
	}
	assertRPN(t, in, ctx, want)
}

func TestModOperator(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	// 10 mod 2 -> 10 2 mod
	in := []token.Token[numeric.Int64]{num(10), bin("mod"), num(2)}
	want := []token.Token[numeric.Int64]{num(10), num(2), bin("mod")}
	assertRPN(t, in, ctx, want)
}

func TestFunctionCall(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	// 5 * sum(2, 3) -> 5 2 3 2arg sum *
	in := []token.Token[numeric.Int64]{
		num(5), bin("*"), fn("sum"), open('('), num(2), comma(), num(3), closeT(')'),
	}
	want := []token.Token[numeric.Int64]{
		num(5), num(2), num(3), argc(2), fn("sum"), bin("*"),
	}
	assertRPN(t, in, ctx, want)
}

func TestImplicitMulNumberConstant(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig().WithImplicitMul())
	in := []token.Token[numeric.Int64]{num(10), token.NewConstant[numeric.Int64]("PI")}
	want := []token.Token[numeric.Int64]{num(10), token.NewConstant[numeric.Int64]("PI"), bin("*")}
	assertRPN(t, in, ctx, want)
}

func TestImplicitMulGroupingClosePair(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig().WithImplicitMul())
	in := []token.Token[numeric.Int64]{open('('), num(2), closeT(')'), open('('), num(3), closeT(')')}
	want := []token.Token[numeric.Int64]{num(2), num(3), bin("*")}
	assertRPN(t, in, ctx, want)
}

func TestMisplacedParenthesesError(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	in := []token.Token[numeric.Int64]{open('('), num(20), bin("+"), num(2)}
	if _, err := InfixToRPN(in, ctx); err == nil {
		t.Error("expected an error for an unbalanced grouping symbol")
	}
}

func TestEmptyNestedGroupingError(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	// Random(()) : the inner pair is empty and not itself owned by a
	// function call, which is rejected even though the outer one is.
	in := []token.Token[numeric.Int64]{fn("random"), open('('), open('('), closeT(')'), closeT(')')}
	if _, err := InfixToRPN(in, ctx); err == nil {
		t.Error("expected an error for random(())")
	}
}

func TestNestedGroupingInFunctionCallError(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	// sum((10, 2, 3)) is invalid: the comma sits inside a plain grouping
	// pair wrapped around the function's arguments.
	in := []token.Token[numeric.Int64]{
		fn("sum"), open('('), open('('), num(10), comma(), num(2), comma(), num(3), closeT(')'), closeT(')'),
	}
	if _, err := InfixToRPN(in, ctx); err == nil {
		t.Error("expected an error for sum((10, 2, 3))")
	}
}
