package config

import "context"

// Source supplies one layer of the configuration tree. Implementations
// include YAML files, environment variables and command-line flags; layers
// are merged in precedence order by Load.
type Source interface {
	// Load retrieves this source's data as a string-keyed map, possibly
	// nested. Implementations must return data the caller may modify
	// freely.
	Load(ctx context.Context) (map[string]any, error)

	// Name identifies the source in error messages and logs.
	Name() string
}
