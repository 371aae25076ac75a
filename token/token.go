// Package token defines the tagged-union token model the tokenizer produces
// and the shunting-yard and RPN stages consume (spec.md §3 "Token").
//
// Adapted from the teacher's token.Token struct (a flat struct with a
// TokenType string and a Literal any field) generalized to a generic
// payload: Token[N] carries whichever field its Kind uses, the same way the
// teacher's Literal field is only meaningful for NUMBER/STRING tokens.
package token

import "fmt"

// Kind identifies which variant of the tagged union a Token holds.
type Kind int

const (
	Number Kind = iota
	Variable
	Constant
	BinaryOperator
	UnaryOperator
	Function
	ArgCount
	GroupingOpen
	GroupingClose
	Comma
)

// String renders the kind name, used by Token.String for debugging.
func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Variable:
		return "Variable"
	case Constant:
		return "Constant"
	case BinaryOperator:
		return "BinaryOperator"
	case UnaryOperator:
		return "UnaryOperator"
	case Function:
		return "Function"
	case ArgCount:
		return "ArgCount"
	case GroupingOpen:
		return "GroupingOpen"
	case GroupingClose:
		return "GroupingClose"
	case Comma:
		return "Comma"
	default:
		return "Unknown"
	}
}

// Token is the tagged union of lexical atoms spec.md §3 describes. Only the
// field(s) relevant to Kind are populated:
//   - Number: Value
//   - Variable / Constant / BinaryOperator / UnaryOperator / Function: Name
//   - ArgCount: Count
//   - GroupingOpen / GroupingClose: Symbol
//   - Comma: none
type Token[N any] struct {
	Kind   Kind
	Name   string
	Value  N
	Count  int
	Symbol rune
}

func NewNumber[N any](value N) Token[N] {
	return Token[N]{Kind: Number, Value: value}
}

func NewVariable[N any](name string) Token[N] {
	return Token[N]{Kind: Variable, Name: name}
}

func NewConstant[N any](name string) Token[N] {
	return Token[N]{Kind: Constant, Name: name}
}

func NewBinaryOperator[N any](name string) Token[N] {
	return Token[N]{Kind: BinaryOperator, Name: name}
}

func NewUnaryOperator[N any](name string) Token[N] {
	return Token[N]{Kind: UnaryOperator, Name: name}
}

func NewFunction[N any](name string) Token[N] {
	return Token[N]{Kind: Function, Name: name}
}

func NewArgCount[N any](count int) Token[N] {
	return Token[N]{Kind: ArgCount, Count: count}
}

func NewGroupingOpen[N any](symbol rune) Token[N] {
	return Token[N]{Kind: GroupingOpen, Symbol: symbol}
}

func NewGroupingClose[N any](symbol rune) Token[N] {
	return Token[N]{Kind: GroupingClose, Symbol: symbol}
}

func NewComma[N any]() Token[N] {
	return Token[N]{Kind: Comma}
}

func (t Token[N]) IsNumber() bool         { return t.Kind == Number }
func (t Token[N]) IsVariable() bool       { return t.Kind == Variable }
func (t Token[N]) IsConstant() bool       { return t.Kind == Constant }
func (t Token[N]) IsBinaryOperator() bool { return t.Kind == BinaryOperator }
func (t Token[N]) IsUnaryOperator() bool  { return t.Kind == UnaryOperator }
func (t Token[N]) IsFunction() bool       { return t.Kind == Function }
func (t Token[N]) IsArgCount() bool       { return t.Kind == ArgCount }
func (t Token[N]) IsGroupingOpen() bool   { return t.Kind == GroupingOpen }
func (t Token[N]) IsGroupingClose() bool  { return t.Kind == GroupingClose }
func (t Token[N]) IsComma() bool          { return t.Kind == Comma }

// IsOperand reports whether the token produces a value directly (a number,
// variable or constant) without needing operator application. Used by the
// shunting-yard to route operands to its output and by the lexer's postfix
// operator check.
func (t Token[N]) IsOperand() bool {
	return t.Kind == Number || t.Kind == Variable || t.Kind == Constant
}

// ContainsSymbol reports whether this token is a grouping token carrying
// the given rune, used when checking a function call is followed by '('.
func (t Token[N]) ContainsSymbol(r rune) bool {
	return (t.Kind == GroupingOpen || t.Kind == GroupingClose) && t.Symbol == r
}

// String renders a debug representation of the token.
func (t Token[N]) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%v)", t.Value)
	case Variable:
		return fmt.Sprintf("Variable(%s)", t.Name)
	case Constant:
		return fmt.Sprintf("Constant(%s)", t.Name)
	case BinaryOperator:
		return fmt.Sprintf("BinaryOperator(%s)", t.Name)
	case UnaryOperator:
		return fmt.Sprintf("UnaryOperator(%s)", t.Name)
	case Function:
		return fmt.Sprintf("Function(%s)", t.Name)
	case ArgCount:
		return fmt.Sprintf("ArgCount(%d)", t.Count)
	case GroupingOpen:
		return fmt.Sprintf("GroupingOpen(%q)", t.Symbol)
	case GroupingClose:
		return fmt.Sprintf("GroupingClose(%q)", t.Symbol)
	case Comma:
		return "Comma"
	default:
		return "Unknown"
	}
}
