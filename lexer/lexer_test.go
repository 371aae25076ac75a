package lexer

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

func kinds(toks []token.Token[numeric.Int64]) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func assertKinds(t *testing.T, expr string, ctx *mathctx.Context[numeric.Int64], want []token.Kind) {
	t.Helper()
	toks, err := Tokenize(expr, ctx)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", expr, err)
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want kinds %v", expr, toks, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokenize(%q)[%d] = %v, want %v", expr, i, got[i], want[i])
		}
	}
}

func TestTokenizeNumbersAndOperators(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	assertKinds(t, "1 + 2", ctx, []token.Kind{token.Number, token.BinaryOperator, token.Number})
}

func TestTokenizeGrouping(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	assertKinds(t, "(1 + 2)", ctx, []token.Kind{
		token.GroupingOpen, token.Number, token.BinaryOperator, token.Number, token.GroupingClose,
	})
}

func TestTokenizePrefixUnaryMinus(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	assertKinds(t, "-5", ctx, []token.Kind{token.UnaryOperator, token.Number})
}

func TestTokenizeChainedPrefixUnary(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	assertKinds(t, "-(+(-(+(5))))", ctx, []token.Kind{
		token.UnaryOperator, token.GroupingOpen,
		token.UnaryOperator, token.GroupingOpen,
		token.UnaryOperator, token.GroupingOpen,
		token.UnaryOperator, token.GroupingOpen,
		token.Number,
		token.GroupingClose, token.GroupingClose, token.GroupingClose, token.GroupingClose,
	})
}

func TestTokenizeBinaryMinusAfterOperand(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	// "10--+2": binary '-' then prefix '-' then prefix '+' then 2.
	assertKinds(t, "10--+2", ctx, []token.Kind{
		token.Number, token.BinaryOperator, token.UnaryOperator, token.UnaryOperator, token.Number,
	})
}

func TestTokenizePostfixFactorial(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	assertKinds(t, "5!", ctx, []token.Kind{token.Number, token.UnaryOperator})
}

func TestTokenizeFunctionCall(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	assertKinds(t, "max(1,2)", ctx, []token.Kind{
		token.Function, token.GroupingOpen, token.Number, token.Comma, token.Number, token.GroupingClose,
	})
}

func TestTokenizeIdentifierClassification(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	if err := ctx.SetVariable("x", 10); err != nil {
		t.Fatalf("SetVariable: %v", err)
	}
	assertKinds(t, "x + PI", ctx, []token.Kind{token.Variable, token.BinaryOperator, token.Constant})
}

func TestTokenizeUndefinedIdentifierIsVariable(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	assertKinds(t, "unknownName", ctx, []token.Kind{token.Variable})
}

func TestTokenizeComplexUnit(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig().WithComplexNumber())
	assertKinds(t, "3 + i", ctx, []token.Kind{token.Number, token.BinaryOperator, token.Constant})
}

func TestTokenizeUnrecognizedSymbol(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	if _, err := Tokenize("1 @ 2", ctx); err == nil {
		t.Error("expected an error for an unrecognized symbol")
	}
}

func TestTokenizeInvalidNumberLiteral(t *testing.T) {
	ctx := testContext(t, mathctx.NewConfig())
	if _, err := Tokenize("1.2.3", ctx); err == nil {
		t.Error("expected an error for a malformed number literal")
	}
}
