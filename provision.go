package envspec

import "errors"

// Getter represents a function that retrieves a value and possibly returns an error
type Getter[T any] func() (T, error)

// Bind defers Read of name until the getter is called.
func Bind[T any](name string, spec Spec[T]) Getter[T] {
	return func() (T, error) {
		return Read(name, spec)
	}
}

// BindFrom defers ReadFrom of name until the getter is called.
func BindFrom[T any](src Source, name string, spec Spec[T]) Getter[T] {
	return func() (T, error) {
		return ReadFrom(src, name, spec)
	}
}

// Setter represents a function that sets a value and possibly returns an error
type Setter func() error

// Set creates a setter which stores the getter result in target.
// The target is left untouched when the getter fails.
func Set[T any](target *T, g Getter[T]) Setter {
	return func() error {
		val, err := g()
		if err != nil {
			return err
		}
		*target = val
		return nil
	}
}

// Supply executes setters in order.
// It runs every setter and returns all failures joined together.
func Supply(setters ...Setter) error {
	var errs []error
	for _, s := range setters {
		if err := s(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
