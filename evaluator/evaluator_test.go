package evaluator

import (
	"testing"

	"mathex/mathctx"
)

func TestEvalBasicExpressions(t *testing.T) {
	ev, err := NewCheckedInt64(nil)
	if err != nil {
		t.Fatalf("NewCheckedInt64: %v", err)
	}

	cases := []struct {
		expr string
		want int64
	}{
		{"(2 ^ 3) ^ 4", 4096},
		{"max(10, 2) + min(10, 2)", 12},
		{"-(+(-(+(5))))", 5},
		{"10--+2", 12},
		{"sum(1, 2, 3) * 2 - max(2, 10/2, 2^3)", 4},
	}
	for _, tc := range cases {
		got, err := ev.Eval(tc.expr)
		if err != nil {
			t.Errorf("Eval(%q) error: %v", tc.expr, err)
			continue
		}
		if int64(got) != tc.want {
			t.Errorf("Eval(%q) = %v, want %d", tc.expr, got, tc.want)
		}
	}
}

func TestEvalErrorCases(t *testing.T) {
	ev, err := NewCheckedInt64(nil)
	if err != nil {
		t.Fatalf("NewCheckedInt64: %v", err)
	}

	bad := []string{
		"((20) + 2",
		"2^",
		"10 2",
		"8+",
		"max(,)",
		"max(2, )",
		"sum((10, 2, 3))",
		"(())",
		"random(())",
	}
	for _, expr := range bad {
		if _, err := ev.Eval(expr); err == nil {
			t.Errorf("Eval(%q): expected an error, got none", expr)
		}
	}
}

func TestEvalImplicitMul(t *testing.T) {
	config := mathctx.NewConfig().WithImplicitMul()
	ev, err := NewCheckedInt64(config)
	if err != nil {
		t.Fatalf("NewCheckedInt64: %v", err)
	}
	if err := ev.Context().SetVariable("x", 10); err != nil {
		t.Fatalf("SetVariable: %v", err)
	}
	got, err := ev.Eval("2x")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != 20 {
		t.Errorf("Eval(2x) = %v, want 20", got)
	}

	if _, err := ev.Eval("5x(2)"); err == nil {
		t.Error("expected 5x(2) to be rejected as a malformed function call")
	}
}

func TestEvalUnknownVariable(t *testing.T) {
	ev, err := NewCheckedInt64(nil)
	if err != nil {
		t.Fatalf("NewCheckedInt64: %v", err)
	}
	if _, err := ev.Eval("y + 1"); err == nil {
		t.Error("expected an error for an unbound variable")
	}
}

func TestEvalOverflow(t *testing.T) {
	ev, err := NewCheckedInt64(nil)
	if err != nil {
		t.Fatalf("NewCheckedInt64: %v", err)
	}
	if _, err := ev.Eval("9223372036854775807 + 1"); err == nil {
		t.Error("expected an overflow error")
	}
}

func TestEvalFloat64(t *testing.T) {
	ev, err := NewFloat64(nil)
	if err != nil {
		t.Fatalf("NewFloat64: %v", err)
	}
	got, err := ev.Eval("sqrt(2) * sqrt(2)")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got < 1.999 || got > 2.001 {
		t.Errorf("Eval(sqrt(2)*sqrt(2)) = %v, want ~2", got)
	}
}

func TestEvalDecimal(t *testing.T) {
	ev, err := NewDecimal(nil)
	if err != nil {
		t.Fatalf("NewDecimal: %v", err)
	}
	got, err := ev.Eval("1.1 + 2.2")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got.String() != "3.3" {
		t.Errorf("Eval(1.1 + 2.2) = %v, want 3.3", got)
	}
}

func TestEvalComplex(t *testing.T) {
	ev, err := NewComplex(nil)
	if err != nil {
		t.Fatalf("NewComplex: %v", err)
	}
	got, err := ev.Eval("3 + i")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got.String() != "3+1i" {
		t.Errorf("Eval(3 + i) = %v, want 3+1i", got)
	}

	// Order-dependent functions are not registered on the complex backend.
	if _, err := ev.Eval("max(1, 2)"); err == nil {
		t.Error("expected max to be unavailable on the complex backend")
	}
}
