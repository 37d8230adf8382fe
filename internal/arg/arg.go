// Package arg defines the payload stored at each node of the command graph:
// a kind tag plus the declaration (or raw word) the node stands for.
package arg

import "github.com/vk/tapline/internal/config"

// Kind classifies what a graph node represents.
type Kind int

const (
	// KindUnknown is the zero value; a word that fit no declaration.
	KindUnknown Kind = iota
	// KindFlag is a declared flag.
	KindFlag
	// KindSubCommand is a declared subcommand.
	KindSubCommand
	// KindArgument is a positional argument.
	KindArgument
	// KindUnknownFlag is an option-looking word with no matching declaration.
	KindUnknownFlag
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindSubCommand:
		return "subcommand"
	case KindArgument:
		return "argument"
	case KindUnknownFlag:
		return "unknown-flag"
	default:
		return "unknown"
	}
}

// Arg is the node payload. Exactly one of Flag or Command is set for the
// declared kinds; Text carries the raw word for the rest.
type Arg struct {
	Kind    Kind
	Flag    *config.Flag
	Command *config.Command
	Text    string
}

// ForFlag builds the payload for a declared flag node.
func ForFlag(f *config.Flag) Arg {
	return Arg{Kind: KindFlag, Flag: f}
}

// ForCommand builds the payload for a declared subcommand node.
func ForCommand(c *config.Command) Arg {
	return Arg{Kind: KindSubCommand, Command: c}
}

// Name returns the display name of the declaration behind this payload, or
// the raw text when there is none.
func (a Arg) Name() string {
	switch a.Kind {
	case KindFlag:
		return a.Flag.Name
	case KindSubCommand:
		return a.Command.Name
	default:
		return a.Text
	}
}
