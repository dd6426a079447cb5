package envspec

import (
	"fmt"
	"strings"
)

// ErrorHandler decides what happens when a source fails to look up a value.
// It returns whether resolution should continue with the next source and,
// when it should not, the error to report.
type ErrorHandler func(err error, sourceName string) (bool, error)

// ContinueOnError ignores the failing source and moves on to the next one.
func ContinueOnError(err error, sourceName string) (bool, error) {
	return true, nil
}

// BreakOnError stops resolution on the first source error.
func BreakOnError(err error, sourceName string) (bool, error) {
	return false, err
}

// Resolver is a Source which consults several sources in order.
// The first source that reports a variable as present wins, even if its value
// is empty; ReadFrom then treats the empty value as absent.
//
// AddSource, WithErrorHandler and WithLogger must not be called concurrently
// with Lookup.
type Resolver struct {
	sources      []Source
	errorHandler ErrorHandler
	logger       Logger
}

// NewResolver creates a Resolver querying sources in the order given.
// By default, it uses BreakOnError and does not log.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{
		sources:      sources,
		errorHandler: BreakOnError,
		logger:       NoopLogger{},
	}
}

// WithErrorHandler sets a custom error handler and returns the resolver for chaining.
// A nil handler makes every source error fatal.
func (r *Resolver) WithErrorHandler(handler ErrorHandler) *Resolver {
	r.errorHandler = handler
	return r
}

// WithLogger sets the logger used to report skipped sources.
func (r *Resolver) WithLogger(logger Logger) *Resolver {
	if logger == nil {
		logger = NoopLogger{}
	}
	r.logger = logger
	return r
}

// AddSource appends src with the lowest priority.
func (r *Resolver) AddSource(src Source) {
	r.sources = append(r.sources, src)
}

// Lookup queries the sources in order and returns the first value found.
// A value supplied by any source but the first one is logged at info level.
func (r *Resolver) Lookup(name string) (string, bool, error) {
	for i, src := range r.sources {
		val, found, err := src.Lookup(name)
		if err != nil {
			if r.errorHandler == nil {
				return "", false, err
			}
			proceed, handlerErr := r.errorHandler(err, src.Name())
			if !proceed {
				return "", false, handlerErr
			}
			r.logger.Error("skipping failed source", "source", src.Name(), "variable", name, "error", err)
			continue
		}
		if found {
			if i > 0 {
				r.logger.Info("variable resolved from fallback source", "source", src.Name(), "variable", name)
			}
			return val, true, nil
		}
	}
	return "", false, nil
}

// Name lists the chained sources in priority order.
func (r *Resolver) Name() string {
	names := make([]string, len(r.sources))
	for i, src := range r.sources {
		names[i] = src.Name()
	}
	return fmt.Sprintf("Resolver[%s]", strings.Join(names, ", "))
}
