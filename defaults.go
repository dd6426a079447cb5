package envspec

// DefaultSource is the table used by Read, MustRead and Bind.
// By default, it is the process environment.
var DefaultSource Source = EnvSource{}
