package config

import "github.com/zclconf/go-cty/cty"

// Flag describes a single option: a canonical name, a one-rune short form,
// a long form, and whether the flag consumes a value. Default, when present,
// carries the declared default as a typed cty value.
type Flag struct {
	Name     string
	Short    rune
	Long     string
	TakesArg bool
	Default  *cty.Value
}

// Command describes one subcommand: its name, the aliases it answers to, the
// flags scoped beneath it, and its nested subcommands.
type Command struct {
	Name     string
	Aliases  []string
	Flags    []Flag
	Commands []Command
}

// Matches reports whether word names this command, either by its canonical
// name or by one of its declared aliases.
func (c *Command) Matches(word string) bool {
	if word == c.Name {
		return true
	}
	for _, alias := range c.Aliases {
		if word == alias {
			return true
		}
	}
	return false
}

// Model is the complete declaration for one binary: flags attached to the
// binary itself plus the top-level subcommands.
type Model struct {
	Flags    []Flag
	Commands []Command
}
