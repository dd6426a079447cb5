package envspec

//go:generate go run go.uber.org/mock/mockgen@v0.3.0 -source source.go -destination ./mock/source.go -package mock

// Source is a flat table of variables, such as the process environment.
type Source interface {
	// Lookup returns the raw value of name and whether it is present.
	// An error means the table could not be consulted at all.
	Lookup(name string) (value string, found bool, err error)

	// Name returns a human-readable name of the source used in errors and logs.
	Name() string
}
