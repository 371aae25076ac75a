package numeric

import (
	"fmt"
	"math"
	"strconv"

	"mathex/errs"
)

// CheckedInt64 is the overflow-detecting machine-integer backend. Every
// arithmetic method reports errs.Overflow instead of silently wrapping.
type CheckedInt64 int64

// Int64 is the wrapping/native machine-integer backend: arithmetic uses
// Go's built-in int64 semantics, which wrap silently on overflow, exactly
// as spec.md §4.5 describes for the "unchecked" flavor.
type Int64 int64

func (a CheckedInt64) Add(b CheckedInt64) (CheckedInt64, error) {
	r := int64(a) + int64(b)
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, errs.New(errs.Overflow, "integer overflow: %d + %d", a, b)
	}
	return CheckedInt64(r), nil
}

func (a CheckedInt64) Sub(b CheckedInt64) (CheckedInt64, error) {
	r := int64(a) - int64(b)
	if (b < 0 && r < a) || (b > 0 && r > a) {
		return 0, errs.New(errs.Overflow, "integer overflow: %d - %d", a, b)
	}
	return CheckedInt64(r), nil
}

func (a CheckedInt64) Mul(b CheckedInt64) (CheckedInt64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (a == math.MinInt64 && b == -1) {
		return 0, errs.New(errs.Overflow, "integer overflow: %d * %d", a, b)
	}
	r := int64(a) * int64(b)
	if r/int64(b) != int64(a) {
		return 0, errs.New(errs.Overflow, "integer overflow: %d * %d", a, b)
	}
	return CheckedInt64(r), nil
}

func (a CheckedInt64) Div(b CheckedInt64) (CheckedInt64, error) {
	if b == 0 {
		return 0, errs.New(errs.DivisionByZero, "division by zero: %d / %d", a, b)
	}
	if a == math.MinInt64 && b == -1 {
		return 0, errs.New(errs.Overflow, "integer overflow: %d / %d", a, b)
	}
	return CheckedInt64(int64(a) / int64(b)), nil
}

func (a CheckedInt64) Mod(b CheckedInt64) (CheckedInt64, error) {
	if b == 0 {
		return 0, errs.New(errs.DivisionByZero, "division by zero: %d mod %d", a, b)
	}
	return CheckedInt64(int64(a) % int64(b)), nil
}

func (a CheckedInt64) Pow(b CheckedInt64) (CheckedInt64, error) {
	if b < 0 {
		f, err := a.Float64()
		if err != nil {
			return 0, err
		}
		e, err := b.Float64()
		if err != nil {
			return 0, err
		}
		return CheckedInt64(0).FromFloat64Value(math.Pow(f, e))
	}
	result := CheckedInt64(1)
	base := a
	exp := int64(b)
	for exp > 0 {
		if exp&1 == 1 {
			var err error
			result, err = result.Mul(base)
			if err != nil {
				return 0, err
			}
		}
		exp >>= 1
		if exp > 0 {
			var err error
			base, err = base.Mul(base)
			if err != nil {
				return 0, err
			}
		}
	}
	return result, nil
}

func (a CheckedInt64) Equal(b CheckedInt64) bool { return a == b }
func (a CheckedInt64) Less(b CheckedInt64) bool  { return a < b }
func (a CheckedInt64) Float64() (float64, error) { return float64(a), nil }
func (a CheckedInt64) String() string            { return strconv.FormatInt(int64(a), 10) }

// FromFloat64Value converts a float64 result back into a CheckedInt64,
// reporting NaN if it is non-finite and Overflow if it is out of int64 range.
func (CheckedInt64) FromFloat64Value(f float64) (CheckedInt64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errs.New(errs.NaN, "non-finite result: %v", f)
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, errs.New(errs.Overflow, "value out of int64 range: %v", f)
	}
	return CheckedInt64(int64(f)), nil
}

// ParseCheckedInt64 parses a decimal-literal lexeme into a CheckedInt64 by
// delegating to strconv.ParseInt. Only integer literals are accepted; a
// fractional literal such as "1.5" fails with InvalidInput.
func ParseCheckedInt64(lexeme string) (CheckedInt64, error) {
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return 0, errs.New(errs.InvalidInput, "invalid integer literal: %q", lexeme)
	}
	return CheckedInt64(i), nil
}

// CheckedInt64Backend is the Backend[CheckedInt64] value wired into
// checked-integer contexts.
var CheckedInt64Backend = Backend[CheckedInt64]{
	Name:        "int64 (checked)",
	Zero:        0,
	One:         1,
	Parse:       ParseCheckedInt64,
	FromFloat64: CheckedInt64(0).FromFloat64Value,
}

func (a Int64) Add(b Int64) (Int64, error) { return a + b, nil }
func (a Int64) Sub(b Int64) (Int64, error) { return a - b, nil }
func (a Int64) Mul(b Int64) (Int64, error) { return a * b, nil }

func (a Int64) Div(b Int64) (Int64, error) {
	if b == 0 {
		return 0, errs.New(errs.DivisionByZero, "division by zero: %d / %d", a, b)
	}
	return a / b, nil
}

func (a Int64) Mod(b Int64) (Int64, error) {
	if b == 0 {
		return 0, errs.New(errs.DivisionByZero, "division by zero: %d mod %d", a, b)
	}
	return a % b, nil
}

func (a Int64) Pow(b Int64) (Int64, error) {
	if b < 0 {
		return Int64(int64(math.Pow(float64(a), float64(b)))), nil
	}
	result := Int64(1)
	base := a
	exp := int64(b)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result, nil
}

func (a Int64) Equal(b Int64) bool { return a == b }
func (a Int64) Less(b Int64) bool  { return a < b }
func (a Int64) Float64() (float64, error) {
	return float64(a), nil
}
func (a Int64) String() string { return fmt.Sprintf("%d", int64(a)) }

// ParseInt64 parses a decimal-literal lexeme into an Int64.
func ParseInt64(lexeme string) (Int64, error) {
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return 0, errs.New(errs.InvalidInput, "invalid integer literal: %q", lexeme)
	}
	return Int64(i), nil
}

// Int64FromFloat64 wraps f into an Int64 using native Go truncating
// conversion semantics; unlike the checked backend this never errors on
// range, matching the "wrapping/native" unchecked flavor.
func Int64FromFloat64(f float64) (Int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errs.New(errs.NaN, "non-finite result: %v", f)
	}
	return Int64(int64(f)), nil
}

// Int64Backend is the Backend[Int64] value wired into unchecked-integer
// contexts.
var Int64Backend = Backend[Int64]{
	Name:        "int64 (unchecked)",
	Zero:        0,
	One:         1,
	Parse:       ParseInt64,
	FromFloat64: Int64FromFloat64,
}
