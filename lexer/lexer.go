// Package lexer implements the tokenizer of spec.md §4.1: it turns an
// infix expression string into a linear []token.Token[N], disambiguating
// unary vs binary `+`/`-` and classifying identifiers against a Context.
//
// Adapted from the teacher's character-at-a-time scanner (lexer.Lexer with
// characters/position/readPosition cursors and a peek/advance pair) but
// driven by the Context's registered operator and identifier names instead
// of a fixed keyword table, since this tokenizer's symbol set is
// configurable per Context rather than a fixed language grammar.
package lexer

import (
	"mathex/errs"
	"mathex/mathctx"
	"mathex/numeric"
	"mathex/registry"
	"mathex/token"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isLetter(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentChar(r rune) bool { return isLetter(r) || isDigit(r) }

// lexer holds the scanning state for one call to Tokenize.
type lexer[N numeric.Numeric[N]] struct {
	characters []rune
	position   int
	ctx        *mathctx.Context[N]
	tokens     []token.Token[N]
}

// Tokenize scans expression into a token sequence using ctx to classify
// identifiers and operator symbols. It either returns a full token sequence
// or exactly one error (spec.md §8 property 1: "Tokenization totality").
func Tokenize[N numeric.Numeric[N]](expression string, ctx *mathctx.Context[N]) ([]token.Token[N], error) {
	lx := &lexer[N]{
		characters: []rune(expression),
		ctx:        ctx,
	}
	for lx.position < len(lx.characters) {
		lx.skipWhitespace()
		if lx.position >= len(lx.characters) {
			break
		}
		c := lx.characters[lx.position]
		var err error
		switch {
		case isDigit(c) || c == '.':
			err = lx.scanNumber()
		case isLetter(c):
			lx.scanIdentifier()
		case ctx.Config().IsGroupingOpen(c):
			lx.tokens = append(lx.tokens, token.NewGroupingOpen[N](c))
			lx.position++
		case ctx.Config().IsGroupingClose(c):
			lx.tokens = append(lx.tokens, token.NewGroupingClose[N](c))
			lx.position++
		case c == ',':
			lx.tokens = append(lx.tokens, token.NewComma[N]())
			lx.position++
		default:
			err = lx.scanOperator()
		}
		if err != nil {
			return nil, err
		}
	}
	return lx.tokens, nil
}

func (lx *lexer[N]) skipWhitespace() {
	for lx.position < len(lx.characters) {
		switch lx.characters[lx.position] {
		case ' ', '\t', '\r', '\n':
			lx.position++
		default:
			return
		}
	}
}

func (lx *lexer[N]) scanNumber() error {
	start := lx.position
	dots := 0
	for lx.position < len(lx.characters) {
		c := lx.characters[lx.position]
		if isDigit(c) {
			lx.position++
			continue
		}
		if c == '.' {
			dots++
			if dots > 1 {
				break
			}
			lx.position++
			continue
		}
		break
	}
	lexeme := string(lx.characters[start:lx.position])
	n, err := lx.ctx.ParseNumber(lexeme)
	if err != nil {
		return errs.New(errs.InvalidInput, "invalid number literal: %q", lexeme)
	}
	lx.tokens = append(lx.tokens, token.NewNumber[N](n))
	return nil
}

func (lx *lexer[N]) scanIdentifier() {
	start := lx.position
	for lx.position < len(lx.characters) && isIdentChar(lx.characters[lx.position]) {
		lx.position++
	}
	name := string(lx.characters[start:lx.position])

	if lx.ctx.Config().ComplexNumber && name == "i" {
		lx.tokens = append(lx.tokens, token.NewConstant[N](name))
		return
	}

	switch {
	case lx.ctx.IsFunction(name):
		lx.tokens = append(lx.tokens, token.NewFunction[N](name))
	case lx.ctx.IsBinaryFunction(name):
		lx.tokens = append(lx.tokens, token.NewBinaryOperator[N](name))
	case lx.ctx.IsUnaryFunction(name):
		lx.tokens = append(lx.tokens, token.NewUnaryOperator[N](name))
	case lx.ctx.IsConstant(name):
		lx.tokens = append(lx.tokens, token.NewConstant[N](name))
	default:
		// Undefined variables fail at eval time, not parse time.
		lx.tokens = append(lx.tokens, token.NewVariable[N](name))
	}
}

// scanOperator greedily consumes the longest prefix of the remaining input
// that names a registered unary or binary operator, then disambiguates
// prefix-unary / postfix-unary / binary per spec.md §4.1 rule 5.
func (lx *lexer[N]) scanOperator() error {
	remaining := lx.characters[lx.position:]
	binaryNames, unaryNames := lx.ctx.OperatorNames()

	best := ""
	candidates := make([]string, 0, len(binaryNames)+len(unaryNames))
	candidates = append(candidates, binaryNames...)
	candidates = append(candidates, unaryNames...)
	for _, name := range candidates {
		runes := []rune(name)
		if len(runes) > len(remaining) || len(runes) <= len(best) {
			continue
		}
		if string(remaining[:len(runes)]) == name {
			best = name
		}
	}

	if best == "" {
		return errs.New(errs.InvalidInput, "unrecognized symbol starting at %q", string(remaining))
	}

	lx.position += len([]rune(best))

	if lx.isPrefixPosition() {
		if unary, ok := lx.ctx.GetUnaryFunction(best); ok && unary.Notation() == registry.Prefix {
			lx.tokens = append(lx.tokens, token.NewUnaryOperator[N](best))
			return nil
		}
		lx.tokens = append(lx.tokens, token.NewBinaryOperator[N](best))
		return nil
	}

	if unary, ok := lx.ctx.GetUnaryFunction(best); ok && unary.Notation() == registry.Postfix && lx.prevAllowsPostfix() {
		lx.tokens = append(lx.tokens, token.NewUnaryOperator[N](best))
		return nil
	}

	lx.tokens = append(lx.tokens, token.NewBinaryOperator[N](best))
	return nil
}

// isPrefixPosition reports whether the next operator occurrence sits at the
// expression start, or immediately after a GroupingOpen, Comma,
// BinaryOperator, or prefix UnaryOperator.
func (lx *lexer[N]) isPrefixPosition() bool {
	if len(lx.tokens) == 0 {
		return true
	}
	prev := lx.tokens[len(lx.tokens)-1]
	switch {
	case prev.IsGroupingOpen(), prev.IsComma(), prev.IsBinaryOperator():
		return true
	case prev.IsUnaryOperator():
		if unary, ok := lx.ctx.GetUnaryFunction(prev.Name); ok {
			return unary.Notation() == registry.Prefix
		}
		return false
	default:
		return false
	}
}

// prevAllowsPostfix reports whether the preceding token can be the operand
// of a postfix unary operator: a number, constant, variable, grouping
// close, or another postfix unary operator.
func (lx *lexer[N]) prevAllowsPostfix() bool {
	if len(lx.tokens) == 0 {
		return false
	}
	prev := lx.tokens[len(lx.tokens)-1]
	if prev.IsOperand() || prev.IsGroupingClose() {
		return true
	}
	if prev.IsUnaryOperator() {
		if unary, ok := lx.ctx.GetUnaryFunction(prev.Name); ok {
			return unary.Notation() == registry.Postfix
		}
	}
	return false
}
