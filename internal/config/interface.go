package config

import "context"

// Loader is the interface for a format-specific bag configuration loader.
type Loader interface {
	// Load reads the bag configuration at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
