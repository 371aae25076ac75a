package mathctx

import "mathex/errs"

// GroupingSymbol is a matched pair of grouping characters, e.g. '(' and ')'.
// Both the open and close members map back to the same GroupingSymbol value
// so a lookup by either character yields the pair (spec.md §3 Config).
type GroupingSymbol struct {
	Open  rune
	Close rune
}

// Config holds the per-evaluation options spec.md §3 "Config" describes.
type Config struct {
	// ImplicitMul enables injection of '*' between adjacent producer and
	// consumer tokens (spec.md §4.2 implicit-multiplication rule).
	ImplicitMul bool
	// ComplexNumber signals to the tokenizer that the identifier `i` is a
	// constant (the imaginary unit), not a variable.
	ComplexNumber bool
	// CustomFunctionCall relaxes the Function(name) call-site check: when
	// false, a function call must be followed by GroupingOpen('('); when
	// true, any configured grouping-open is accepted.
	CustomFunctionCall bool

	grouping map[rune]GroupingSymbol
}

// NewConfig returns a Config preloaded with the standard '(' '/' ')'
// grouping pair, matching math_engine's `Config::new()`.
func NewConfig() *Config {
	cfg := &Config{grouping: make(map[rune]GroupingSymbol)}
	// AddGroupingSymbol cannot fail on an empty map.
	_ = cfg.AddGroupingSymbol('(', ')')
	return cfg
}

// EmptyConfig returns a Config with no grouping symbols registered at all,
// matching math_engine's `Config::default()`.
func EmptyConfig() *Config {
	return &Config{grouping: make(map[rune]GroupingSymbol)}
}

// WithImplicitMul enables implicit multiplication and returns the Config
// for chaining.
func (c *Config) WithImplicitMul() *Config {
	c.ImplicitMul = true
	return c
}

// WithComplexNumber marks `i` as the imaginary-unit constant and returns the
// Config for chaining.
func (c *Config) WithComplexNumber() *Config {
	c.ComplexNumber = true
	return c
}

// WithCustomFunctionCall relaxes the function call-site grouping check and
// returns the Config for chaining.
func (c *Config) WithCustomFunctionCall() *Config {
	c.CustomFunctionCall = true
	return c
}

// AddGroupingSymbol registers a new grouping pair. It fails if either
// character is already registered as part of another pair.
func (c *Config) AddGroupingSymbol(open, close rune) error {
	if open == close {
		return errs.New(errs.InvalidInput, "grouping open and close symbols must differ: %q", open)
	}
	if _, exists := c.grouping[open]; exists {
		return errs.New(errs.InvalidInput, "duplicated grouping symbol: %q", open)
	}
	if _, exists := c.grouping[close]; exists {
		return errs.New(errs.InvalidInput, "duplicated grouping symbol: %q", close)
	}
	sym := GroupingSymbol{Open: open, Close: close}
	c.grouping[open] = sym
	c.grouping[close] = sym
	return nil
}

// GroupingSymbolFor looks up the grouping pair containing ch, by either its
// open or close member.
func (c *Config) GroupingSymbolFor(ch rune) (GroupingSymbol, bool) {
	sym, ok := c.grouping[ch]
	return sym, ok
}

// IsGroupingOpen reports whether ch is the open member of some configured
// pair.
func (c *Config) IsGroupingOpen(ch rune) bool {
	sym, ok := c.grouping[ch]
	return ok && sym.Open == ch
}

// IsGroupingClose reports whether ch is the close member of some configured
// pair.
func (c *Config) IsGroupingClose(ch rune) bool {
	sym, ok := c.grouping[ch]
	return ok && sym.Close == ch
}
