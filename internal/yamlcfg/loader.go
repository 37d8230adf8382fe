// Package yamlcfg loads command hierarchy declarations written in YAML. It
// mirrors the HCL loader behind the same config.Loader interface:
//
//	flags:
//	  - name: help
//	    short: h
//	    long: help
//	commands:
//	  - name: remote
//	    aliases: [rem]
//	    flags:
//	      - name: verbose
//	        short: V
//	        long: verbose
//	    commands:
//	      - name: add
package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"

	"github.com/vk/tapline/internal/config"
	"github.com/vk/tapline/internal/ctxlog"
	"github.com/vk/tapline/internal/fsutil"
)

// Extensions are the file suffixes this loader claims.
var Extensions = []string{".yaml", ".yml"}

type flagDoc struct {
	Name     string `yaml:"name"`
	Short    string `yaml:"short"`
	Long     string `yaml:"long"`
	TakesArg bool   `yaml:"takes_arg"`
	Default  any    `yaml:"default"`
}

type commandDoc struct {
	Name     string        `yaml:"name"`
	Aliases  []string      `yaml:"aliases"`
	Flags    []*flagDoc    `yaml:"flags"`
	Commands []*commandDoc `yaml:"commands"`
}

type fileDoc struct {
	Flags    []*flagDoc    `yaml:"flags"`
	Commands []*commandDoc `yaml:"commands"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .yaml file under paths, decodes them, merges their
// declarations into one model and validates it.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		for _, ext := range Extensions {
			found, err := fsutil.FindFilesByExtension(path, ext)
			if err != nil {
				return nil, fmt.Errorf("failed to discover definition files under %s: %w", path, err)
			}
			files = append(files, found...)
		}
	}
	logger.Debug("Discovered definition files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		var doc fileDoc
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", file, err)
		}

		for _, fd := range doc.Flags {
			flag, err := translateFlag(fd)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Flags = append(model.Flags, flag)
		}
		for _, cd := range doc.Commands {
			cmd, err := translateCommand(cd)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Commands = append(model.Commands, cmd)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("YAML loader finished.",
		"binary_flags", len(model.Flags), "commands", len(model.Commands))
	return model, nil
}

func translateFlag(fd *flagDoc) (config.Flag, error) {
	flag := config.Flag{
		Name:     fd.Name,
		Long:     fd.Long,
		TakesArg: fd.TakesArg,
	}

	if fd.Short != "" {
		runes := []rune(fd.Short)
		if len(runes) != 1 {
			return config.Flag{}, fmt.Errorf("%w: short form %q of flag %q must be a single character",
				config.ErrInvalidDefinition, fd.Short, fd.Name)
		}
		flag.Short = runes[0]
	}

	if fd.Default != nil {
		if !fd.TakesArg {
			return config.Flag{}, fmt.Errorf("%w: flag %q declares a default but takes_arg is false",
				config.ErrInvalidDefinition, fd.Name)
		}
		ty, err := gocty.ImpliedType(fd.Default)
		if err != nil {
			return config.Flag{}, fmt.Errorf("%w: default of flag %q has unsupported type: %v",
				config.ErrInvalidDefinition, fd.Name, err)
		}
		val, err := gocty.ToCtyValue(fd.Default, ty)
		if err != nil {
			return config.Flag{}, fmt.Errorf("%w: default of flag %q: %v",
				config.ErrInvalidDefinition, fd.Name, err)
		}
		flag.Default = &val
	}

	return flag, nil
}

func translateCommand(cd *commandDoc) (config.Command, error) {
	cmd := config.Command{
		Name:    cd.Name,
		Aliases: cd.Aliases,
	}
	for _, fd := range cd.Flags {
		flag, err := translateFlag(fd)
		if err != nil {
			return config.Command{}, fmt.Errorf("in command %q: %w", cd.Name, err)
		}
		cmd.Flags = append(cmd.Flags, flag)
	}
	for _, child := range cd.Commands {
		sub, err := translateCommand(child)
		if err != nil {
			return config.Command{}, err
		}
		cmd.Commands = append(cmd.Commands, sub)
	}
	return cmd, nil
}
