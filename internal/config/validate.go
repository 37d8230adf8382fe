package config

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidDefinition indicates a structurally broken command declaration.
// The data is the program's own configuration, so callers treat this as a
// fatal setup failure.
var ErrInvalidDefinition = errors.New("invalid command definition")

// nonWord rejects names containing anything outside [A-Za-z0-9_].
var nonWord = regexp.MustCompile(`\W`)

// Validate checks the whole model: command names must be valid words, no two
// siblings may share a name or alias, and flags within one scope may not
// reuse a name, short form or long form.
func (m *Model) Validate() error {
	if err := validateFlags("binary", m.Flags); err != nil {
		return err
	}
	return validateSiblings("", m.Commands)
}

func validateSiblings(parent string, commands []Command) error {
	names := make(map[string]string) // name or alias -> owning command
	for i := range commands {
		cmd := &commands[i]
		if err := validateName(parent, cmd.Name); err != nil {
			return err
		}
		if owner, taken := names[cmd.Name]; taken {
			return fmt.Errorf("%w: command name %q collides with sibling %q", ErrInvalidDefinition, cmd.Name, owner)
		}
		names[cmd.Name] = cmd.Name
		for _, alias := range cmd.Aliases {
			if owner, taken := names[alias]; taken {
				return fmt.Errorf("%w: alias %q of command %q collides with sibling %q", ErrInvalidDefinition, alias, cmd.Name, owner)
			}
			names[alias] = cmd.Name
		}

		if err := validateFlags(cmd.Name, cmd.Flags); err != nil {
			return err
		}
		if err := validateSiblings(cmd.Name, cmd.Commands); err != nil {
			return err
		}
	}
	return nil
}

func validateName(parent, name string) error {
	where := "at the top level"
	if parent != "" {
		where = fmt.Sprintf("under %q", parent)
	}
	if name == "" {
		return fmt.Errorf("%w: a command %s has an empty name", ErrInvalidDefinition, where)
	}
	if nonWord.MatchString(name) {
		return fmt.Errorf("%w: command name %q %s contains non-word characters", ErrInvalidDefinition, name, where)
	}
	return nil
}

func validateFlags(scope string, flags []Flag) error {
	byName := make(map[string]bool)
	byShort := make(map[rune]bool)
	byLong := make(map[string]bool)
	for i := range flags {
		f := &flags[i]
		if f.Name == "" {
			return fmt.Errorf("%w: a flag in scope %q has an empty name", ErrInvalidDefinition, scope)
		}
		if byName[f.Name] {
			return fmt.Errorf("%w: duplicate flag name %q in scope %q", ErrInvalidDefinition, f.Name, scope)
		}
		byName[f.Name] = true
		if f.Short != 0 {
			if byShort[f.Short] {
				return fmt.Errorf("%w: duplicate short form -%c in scope %q", ErrInvalidDefinition, f.Short, scope)
			}
			byShort[f.Short] = true
		}
		if f.Long != "" {
			if byLong[f.Long] {
				return fmt.Errorf("%w: duplicate long form --%s in scope %q", ErrInvalidDefinition, f.Long, scope)
			}
			byLong[f.Long] = true
		}
	}
	return nil
}
