package hclcfg

import (
	"fmt"

	"github.com/vk/tapline/internal/config"
)

// translateFlag converts one HCL flag block into the agnostic model.
func translateFlag(fb *flagBlock) (config.Flag, error) {
	flag := config.Flag{
		Name:     fb.Name,
		Long:     fb.Long,
		TakesArg: fb.TakesArg,
		Default:  fb.Default,
	}

	if fb.Short != "" {
		runes := []rune(fb.Short)
		if len(runes) != 1 {
			return config.Flag{}, fmt.Errorf("%w: short form %q of flag %q must be a single character",
				config.ErrInvalidDefinition, fb.Short, fb.Name)
		}
		flag.Short = runes[0]
	}

	if fb.Default != nil && !fb.TakesArg {
		return config.Flag{}, fmt.Errorf("%w: flag %q declares a default but takes_arg is false",
			config.ErrInvalidDefinition, fb.Name)
	}

	return flag, nil
}

// translateCommand converts one HCL command block, recursively, into the
// agnostic model.
func translateCommand(cb *commandBlock) (config.Command, error) {
	cmd := config.Command{
		Name:    cb.Name,
		Aliases: cb.Aliases,
	}
	for _, fb := range cb.Flags {
		flag, err := translateFlag(fb)
		if err != nil {
			return config.Command{}, fmt.Errorf("in command %q: %w", cb.Name, err)
		}
		cmd.Flags = append(cmd.Flags, flag)
	}
	for _, child := range cb.Commands {
		sub, err := translateCommand(child)
		if err != nil {
			return config.Command{}, err
		}
		cmd.Commands = append(cmd.Commands, sub)
	}
	return cmd, nil
}
