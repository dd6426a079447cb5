package envspec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies how a raw value is interpreted.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindEnum:
		return "enum"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Spec describes how a single variable is read. The type parameter is the
// type of the value produced by Read.
//
// The set of implementations is closed: StringSpec, NumberSpec, BooleanSpec
// and EnumSpec.
type Spec[T any] interface {
	// Kind returns the interpretation applied to a raw value.
	Kind() Kind
	// HasDefault reports whether a default value was supplied.
	HasDefault() bool

	fallback() (T, bool)
	check(name string) error
	parse(name, raw string) (T, error)
}

// StringSpec returns the raw value unchanged.
type StringSpec struct {
	def    string
	hasDef bool
}

// String creates a spec for a string variable without a default.
func String() StringSpec {
	return StringSpec{}
}

// Default returns a copy of the spec which falls back to val.
func (s StringSpec) Default(val string) StringSpec {
	s.def, s.hasDef = val, true
	return s
}

func (StringSpec) Kind() Kind { return KindString }

func (s StringSpec) HasDefault() bool { return s.hasDef }

func (s StringSpec) fallback() (string, bool) { return s.def, s.hasDef }

func (StringSpec) check(string) error { return nil }

func (StringSpec) parse(_, raw string) (string, error) {
	return raw, nil
}

// NumberSpec parses a decimal number into a float64.
type NumberSpec struct {
	def    float64
	hasDef bool
}

// Number creates a spec for a numeric variable without a default.
func Number() NumberSpec {
	return NumberSpec{}
}

// Default returns a copy of the spec which falls back to val.
// The default is not range checked.
func (s NumberSpec) Default(val float64) NumberSpec {
	s.def, s.hasDef = val, true
	return s
}

func (NumberSpec) Kind() Kind { return KindNumber }

func (s NumberSpec) HasDefault() bool { return s.hasDef }

func (s NumberSpec) fallback() (float64, bool) { return s.def, s.hasDef }

func (NumberSpec) check(string) error { return nil }

// Surrounding whitespace is ignored. Only decimal notation is accepted: Go
// specific syntax such as hex floats or digit separators is rejected.
func (NumberSpec) parse(name, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	result, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || !isDecimal(trimmed) || math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, Error{
			VarName: name,
			Reason:  fmt.Sprintf("expected number, got %q", raw),
			Cause:   ErrInvalidNumber,
		}
	}
	return result, nil
}

// isDecimal reports whether s avoids the non-decimal forms ParseFloat accepts.
func isDecimal(s string) bool {
	if strings.Contains(s, "_") {
		return false
	}
	unsigned := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}

// truthy lists the values a boolean variable treats as true, compared
// case-insensitively. Anything else is false.
var truthy = []string{"1", "true", "yes", "on"}

// BooleanSpec maps 1/true/yes/on (any case) to true and every other
// non-empty value to false. It never fails on a present value.
type BooleanSpec struct {
	def    bool
	hasDef bool
}

// Boolean creates a spec for a boolean variable without a default.
func Boolean() BooleanSpec {
	return BooleanSpec{}
}

// Default returns a copy of the spec which falls back to val.
func (s BooleanSpec) Default(val bool) BooleanSpec {
	s.def, s.hasDef = val, true
	return s
}

func (BooleanSpec) Kind() Kind { return KindBoolean }

func (s BooleanSpec) HasDefault() bool { return s.hasDef }

func (s BooleanSpec) fallback() (bool, bool) { return s.def, s.hasDef }

func (BooleanSpec) check(string) error { return nil }

func (BooleanSpec) parse(_, raw string) (bool, error) {
	for _, t := range truthy {
		if equalFoldASCII(raw, t) {
			return true, nil
		}
	}
	return false, nil
}

// equalFoldASCII compares s and t ignoring ASCII case only.
func equalFoldASCII(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, b := s[i], t[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// EnumSpec accepts only one of a fixed, ordered set of choices.
// Comparison is exact and case-sensitive.
type EnumSpec[T ~string] struct {
	choices []T
	def     T
	hasDef  bool
}

// Enum creates a spec restricted to the given choices. The order of choices
// is kept for error messages.
//
//	mode, err := envspec.Read("APP_ENV", envspec.Enum("development", "production", "test"))
func Enum[T ~string](choices ...T) EnumSpec[T] {
	return EnumSpec[T]{choices: append([]T(nil), choices...)}
}

// Default returns a copy of the spec which falls back to val.
// The default does not have to be one of the choices.
func (s EnumSpec[T]) Default(val T) EnumSpec[T] {
	s.def, s.hasDef = val, true
	return s
}

// Choices returns a copy of the allowed values in declaration order.
func (s EnumSpec[T]) Choices() []T {
	return append([]T(nil), s.choices...)
}

func (EnumSpec[T]) Kind() Kind { return KindEnum }

func (s EnumSpec[T]) HasDefault() bool { return s.hasDef }

func (s EnumSpec[T]) fallback() (T, bool) { return s.def, s.hasDef }

func (s EnumSpec[T]) check(name string) error {
	if len(s.choices) == 0 {
		return Error{
			VarName: name,
			Reason:  "enum has no choices",
			Cause:   ErrInvalidSpec,
		}
	}
	return nil
}

func (s EnumSpec[T]) parse(name, raw string) (T, error) {
	for _, c := range s.choices {
		if string(c) == raw {
			return c, nil
		}
	}
	var zero T
	return zero, Error{
		VarName: name,
		Reason:  fmt.Sprintf("must be one of [%s], got %q", s.joinChoices(), raw),
		Cause:   ErrInvalidChoice,
	}
}

func (s EnumSpec[T]) joinChoices() string {
	values := make([]string, len(s.choices))
	for i, c := range s.choices {
		values[i] = string(c)
	}
	return strings.Join(values, ", ")
}
