package envspec

import "fmt"

// Qualifier is implemented by sources which rewrite the name before the lookup.
// ReadFrom reports errors using the qualified name.
type Qualifier interface {
	Qualify(name string) string
}

// PrefixedSource prepends Prefix to every name before looking it up in Source.
//
//	db := envspec.WithPrefix("BILLING_", envspec.DefaultSource)
//	host, err := envspec.ReadFrom(db, "DB_HOST", envspec.String()) // reads BILLING_DB_HOST
type PrefixedSource struct {
	Prefix string
	Source Source
}

// WithPrefix wraps src so that every lookup is made with the given prefix.
// A nil src means DefaultSource.
func WithPrefix(prefix string, src Source) *PrefixedSource {
	if src == nil {
		src = DefaultSource
	}
	return &PrefixedSource{Prefix: prefix, Source: src}
}

// Lookup retrieves the prefixed name from the wrapped source.
func (s *PrefixedSource) Lookup(name string) (string, bool, error) {
	return s.Source.Lookup(s.Prefix + name)
}

// Name returns the wrapped source name annotated with the prefix.
func (s *PrefixedSource) Name() string {
	return fmt.Sprintf("%s[prefix=%s]", s.Source.Name(), s.Prefix)
}

// Qualify returns the name actually looked up.
func (s *PrefixedSource) Qualify(name string) string {
	if q, ok := s.Source.(Qualifier); ok {
		return q.Qualify(s.Prefix + name)
	}
	return s.Prefix + name
}
