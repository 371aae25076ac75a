// Package numeric defines the capability set a type must satisfy to be used
// as the generic numeric type `N` of the evaluator (spec.md §4.5), plus the
// concrete backends shipped with this module: machine integer (checked and
// unchecked), machine float, arbitrary-precision decimal, and complex.
//
// Go has no operator overloading, so where the original design speaks of
// "N must support +, -, *, ...", this package instead requires N to
// implement methods with the same names as the Numeric interface below.
// Every concrete backend is a defined type over a primitive or library type
// so it can carry those methods.
package numeric

// Numeric is the capability set every backend must provide: additive,
// multiplicative, power and modulo arithmetic, equality, and a lossy
// conversion to float64 for transcendental operators (trig, log, sqrt,
// gamma) to use as their working precision.
//
// Implementations whose basic arithmetic cannot overflow (Decimal's
// Add/Sub/Mul/Div/Mod) never return an Overflow error from it; CheckedInt64
// reports integer overflow, and Float64 and Decimal.Pow report an infinite
// result as Overflow.
type Numeric[T any] interface {
	Add(rhs T) (T, error)
	Sub(rhs T) (T, error)
	Mul(rhs T) (T, error)
	Div(rhs T) (T, error)
	Mod(rhs T) (T, error)
	Pow(rhs T) (T, error)
	Equal(rhs T) bool
	Float64() (float64, error)
	String() string
}

// Ordered extends Numeric with a strict less-than comparison. Backends
// lacking a natural total order (Complex) do not implement it; the stdlib
// package uses this to decide, per backend, whether order-dependent
// functions (min, max, floor, ceil, truncate, round, sign, factorial) can be
// registered at all. This is the "Context-composition decision, not a core
// invariant" spec.md §4.5 describes for the complex backend.
type Ordered[T any] interface {
	Numeric[T]
	Less(rhs T) bool
}

// Backend bundles the capability-set values a Numeric[T] implementation
// cannot provide as instance methods: the additive/multiplicative
// identities, textual parsing (used by the tokenizer for numeric literals),
// and float64 construction (used by stdlib to build results of
// transcendental functions). A Context holds exactly one Backend[T] for its
// lifetime.
type Backend[T Numeric[T]] struct {
	// Name identifies the backend, e.g. "decimal".
	Name string
	// Zero is the additive identity.
	Zero T
	// One is the multiplicative identity.
	One T
	// Parse parses a decimal-literal lexeme (the longest run of digits and
	// at most one '.', per spec.md §4.1 rule 1) into a T.
	Parse func(lexeme string) (T, error)
	// FromFloat64 builds a T from a float64 result, reporting NaN if the
	// value is NaN or +/-Inf and Overflow if it is out of T's representable
	// range.
	FromFloat64 func(f float64) (T, error)
}
