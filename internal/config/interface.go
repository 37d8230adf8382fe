package config

import "context"

// Loader abstracts the source format of command declarations. Implementations
// read definition files from the given paths and translate them into the
// agnostic Model; the caller neither knows nor cares whether the files were
// HCL or YAML.
type Loader interface {
	// Load reads every definition file reachable from paths and returns the
	// merged, validated model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
