package envspec

// MapSource is an in-memory Source, mostly useful in tests.
type MapSource struct {
	SourceName string
	Data       map[string]string
}

// NewMapSource creates a new MapSource. An empty name defaults to "Map".
func NewMapSource(data map[string]string, name string) *MapSource {
	if name == "" {
		name = "Map"
	}
	return &MapSource{
		SourceName: name,
		Data:       data,
	}
}

// Lookup retrieves a value from the map.
func (s *MapSource) Lookup(name string) (string, bool, error) {
	val, found := s.Data[name]
	return val, found, nil
}

// Name returns the source name for logging purposes.
func (s *MapSource) Name() string {
	return s.SourceName
}
