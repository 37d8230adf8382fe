package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/tapline/internal/config"
	"github.com/vk/tapline/internal/ctxlog"
	"github.com/vk/tapline/internal/fsutil"
)

// Extension is the file suffix this loader claims.
const Extension = ".hcl"

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .hcl file under paths, decodes their command and flag
// blocks, merges them into one model and validates it.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, Extension)
		if err != nil {
			return nil, fmt.Errorf("failed to discover definition files under %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered definition files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, fb := range root.Flags {
			flag, err := translateFlag(fb)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Flags = append(model.Flags, flag)
		}
		for _, cb := range root.Commands {
			cmd, err := translateCommand(cb)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Commands = append(model.Commands, cmd)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loader finished.",
		"binary_flags", len(model.Flags), "commands", len(model.Commands))
	return model, nil
}
