package token

import "testing"

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		tok  Token[int]
		kind Kind
	}{
		{"number", NewNumber[int](42), Number},
		{"variable", NewVariable[int]("x"), Variable},
		{"constant", NewConstant[int]("PI"), Constant},
		{"binary operator", NewBinaryOperator[int]("+"), BinaryOperator},
		{"unary operator", NewUnaryOperator[int]("-"), UnaryOperator},
		{"function", NewFunction[int]("Max"), Function},
		{"arg count", NewArgCount[int](3), ArgCount},
		{"grouping open", NewGroupingOpen[int]('('), GroupingOpen},
		{"grouping close", NewGroupingClose[int](')'), GroupingClose},
		{"comma", NewComma[int](), Comma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.tok.Kind, tt.kind)
			}
		})
	}
}

func TestIsOperand(t *testing.T) {
	if !NewNumber[int](1).IsOperand() {
		t.Error("Number should be an operand")
	}
	if !NewVariable[int]("x").IsOperand() {
		t.Error("Variable should be an operand")
	}
	if !NewConstant[int]("PI").IsOperand() {
		t.Error("Constant should be an operand")
	}
	if NewBinaryOperator[int]("+").IsOperand() {
		t.Error("BinaryOperator should not be an operand")
	}
	if NewFunction[int]("Max").IsOperand() {
		t.Error("Function should not be an operand")
	}
}

func TestContainsSymbol(t *testing.T) {
	open := NewGroupingOpen[int]('(')
	if !open.ContainsSymbol('(') {
		t.Error("expected GroupingOpen('(') to contain '('")
	}
	if open.ContainsSymbol(')') {
		t.Error("expected GroupingOpen('(') to not contain ')'")
	}
	if NewComma[int]().ContainsSymbol('(') {
		t.Error("Comma should never contain a grouping symbol")
	}
}
