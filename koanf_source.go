package envspec

import (
	"github.com/knadh/koanf/v2"
)

// KoanfSource exposes a populated koanf instance as a Source. Keys are looked
// up verbatim; non-string values are rendered by koanf.
//
// The instance is only read. Loading providers into it is up to the caller.
type KoanfSource struct {
	k    *koanf.Koanf
	name string
}

// NewKoanfSource creates a KoanfSource. An empty name defaults to "Koanf".
func NewKoanfSource(k *koanf.Koanf, name string) *KoanfSource {
	if name == "" {
		name = "Koanf"
	}
	return &KoanfSource{k: k, name: name}
}

// Lookup retrieves a leaf value from the koanf instance.
// Intermediate paths holding nested maps are reported as not found.
func (s *KoanfSource) Lookup(name string) (string, bool, error) {
	val := s.k.Get(name)
	if val == nil {
		return "", false, nil
	}
	if _, nested := val.(map[string]interface{}); nested {
		return "", false, nil
	}
	return s.k.String(name), true, nil
}

// Name returns the source name.
func (s *KoanfSource) Name() string {
	return s.name
}
