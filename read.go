// Package envspec reads environment variables into typed values described
// by a Spec.
package envspec

import (
	"fmt"
)

// Read looks up name in DefaultSource and interprets it according to spec.
//
// A variable which is not set or is set to an empty string resolves to the
// spec default. Without a default it is an error wrapping ErrRequired.
func Read[T any](name string, spec Spec[T]) (T, error) {
	return ReadFrom(DefaultSource, name, spec)
}

// MustRead is like Read but panics if the variable cannot be read.
func MustRead[T any](name string, spec Spec[T]) T {
	val, err := Read(name, spec)
	if err != nil {
		panic(err)
	}
	return val
}

// ReadFrom looks up name in src and interprets it according to spec.
// A nil src means DefaultSource.
func ReadFrom[T any](src Source, name string, spec Spec[T]) (T, error) {
	var zero T
	if src == nil {
		src = DefaultSource
	}
	varName := name
	if q, ok := src.(Qualifier); ok {
		varName = q.Qualify(name)
	}
	if err := spec.check(varName); err != nil {
		return zero, err
	}

	raw, found, err := src.Lookup(name)
	if err != nil {
		return zero, Error{
			VarName: varName,
			Reason:  fmt.Sprintf("could not be read from %s", src.Name()),
			Cause:   fmt.Errorf("%w: %w", ErrLookup, err),
		}
	}

	if !found || raw == "" {
		if val, ok := spec.fallback(); ok {
			return val, nil
		}
		return zero, Error{
			VarName: varName,
			Reason:  "is not set or empty",
			Cause:   ErrRequired,
		}
	}

	return spec.parse(varName, raw)
}
