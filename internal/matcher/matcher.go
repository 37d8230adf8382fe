// Package matcher resolves raw command-line words against a built command
// graph. The walk is strictly read-only: the graph was finished by the
// builder, and every classification the matcher makes is accumulated in a
// Result value instead of being written back as nodes.
//
// Recognition is deliberately minimal: a word either names a child
// subcommand (by name or alias), exactly matches a visible flag's long or
// short form, or is recorded as a positional argument or unknown flag.
// Splitting "--flag=value" and merging short flags are a tokenizer's job and
// out of scope here.
package matcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/tapline/internal/arg"
	"github.com/vk/tapline/internal/ctxlog"
	"github.com/vk/tapline/internal/graph"
)

// Result is the outcome of matching one word list against the graph.
type Result struct {
	// Path holds the subcommand nodes entered, outermost first.
	Path []graph.NodeHandle
	// Flags holds the nodes of recognized flags in encounter order.
	Flags []graph.NodeHandle
	// Args holds positional words in encounter order.
	Args []string
	// UnknownFlags holds option-looking words that matched no declaration.
	UnknownFlags []string
	// Terminated reports whether a bare "--" stopped option recognition.
	Terminated bool
}

// Current returns the node of the innermost matched subcommand, or false if
// no subcommand was entered.
func (r *Result) Current() (graph.NodeHandle, bool) {
	if len(r.Path) == 0 {
		return 0, false
	}
	return r.Path[len(r.Path)-1], true
}

// Matcher walks words against one immutable command graph.
type Matcher struct {
	g *graph.Graph[arg.Arg]
}

// New creates a Matcher over g. The graph must not grow while the matcher
// is in use.
func New(g *graph.Graph[arg.Arg]) *Matcher {
	return &Matcher{g: g}
}

// Match scans words left to right, descending into subcommands as they are
// named and classifying everything else. It only fails if the graph rejects
// a traversal query, which means a corrupted position rather than bad input.
func (m *Matcher) Match(ctx context.Context, words []string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	res := &Result{}
	acceptOpt := true

	for _, word := range words {
		switch {
		case word == "-":
			// Conventionally "read stdin"; a positional by our rules.
			res.Args = append(res.Args, word)
		case word == "--" && acceptOpt:
			acceptOpt = false
			res.Terminated = true
		case acceptOpt && len(word) > 2 && strings.HasPrefix(word, "--"):
			if err := m.matchLong(res, word); err != nil {
				return nil, err
			}
		case acceptOpt && len(word) > 1 && strings.HasPrefix(word, "-"):
			if err := m.matchShort(res, word); err != nil {
				return nil, err
			}
		default:
			if err := m.matchWord(res, word); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Match: scan complete.",
		"depth", len(res.Path),
		"flags", len(res.Flags),
		"args", len(res.Args),
		"unknown_flags", len(res.UnknownFlags))
	return res, nil
}

// CommandPath returns the subcommand nodes above h, outermost first. Flags
// are filtered out of the ancestor walk so the result reads like the command
// line that reaches h.
func (m *Matcher) CommandPath(h graph.NodeHandle) ([]graph.NodeHandle, error) {
	parents, err := m.g.Ancestors(h)
	if err != nil {
		return nil, fmt.Errorf("resolving command path: %w", err)
	}

	var path []graph.NodeHandle
	for i := len(parents) - 1; i >= 0; i-- {
		payload, err := m.g.Payload(parents[i])
		if err != nil {
			return nil, err
		}
		if payload.Kind == arg.KindSubCommand {
			path = append(path, parents[i])
		}
	}
	return path, nil
}

// visible returns the candidate nodes at the current position: the children
// of the innermost subcommand, or every root when no subcommand was entered.
func (m *Matcher) visible(res *Result) ([]graph.NodeHandle, error) {
	current, ok := res.Current()
	if !ok {
		return m.g.Roots(), nil
	}
	children, err := m.g.Successors(current)
	if err != nil {
		return nil, fmt.Errorf("listing children of current subcommand: %w", err)
	}
	return children, nil
}

// matchWord advances into a child subcommand named word, or records word as
// a positional argument of the current scope.
func (m *Matcher) matchWord(res *Result, word string) error {
	candidates, err := m.visible(res)
	if err != nil {
		return err
	}
	for _, h := range candidates {
		payload, err := m.g.Payload(h)
		if err != nil {
			return err
		}
		if payload.Kind == arg.KindSubCommand && payload.Command.Matches(word) {
			res.Path = append(res.Path, h)
			return nil
		}
	}
	res.Args = append(res.Args, word)
	return nil
}

// matchLong resolves a "--name" word against the long forms visible at the
// current position.
func (m *Matcher) matchLong(res *Result, word string) error {
	name := strings.TrimPrefix(word, "--")
	return m.matchFlag(res, word, func(f arg.Arg) bool {
		return f.Flag.Long != "" && f.Flag.Long == name
	})
}

// matchShort resolves a "-x" word against the short forms visible at the
// current position. Anything longer than one rune after the dash is a merged
// group, which we do not interpret.
func (m *Matcher) matchShort(res *Result, word string) error {
	runes := []rune(word[1:])
	if len(runes) != 1 {
		res.UnknownFlags = append(res.UnknownFlags, word)
		return nil
	}
	return m.matchFlag(res, word, func(f arg.Arg) bool {
		return f.Flag.Short != 0 && f.Flag.Short == runes[0]
	})
}

func (m *Matcher) matchFlag(res *Result, word string, matches func(arg.Arg) bool) error {
	candidates, err := m.visible(res)
	if err != nil {
		return err
	}
	for _, h := range candidates {
		payload, err := m.g.Payload(h)
		if err != nil {
			return err
		}
		if payload.Kind == arg.KindFlag && matches(payload) {
			res.Flags = append(res.Flags, h)
			return nil
		}
	}
	res.UnknownFlags = append(res.UnknownFlags, word)
	return nil
}
