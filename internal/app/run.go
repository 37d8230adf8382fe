package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/tapline/internal/ctxlog"
	"github.com/vk/tapline/internal/graph"
	"github.com/vk/tapline/internal/matcher"
)

// Run resolves the configured words against the built graph and writes a
// human-readable resolution report.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "word_count", len(appConfig.Words))

	m := matcher.New(a.graph)
	res, err := m.Match(ctx, appConfig.Words)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if err := a.report(m, res); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// report prints the matched command path, flags, arguments and unknowns.
func (a *App) report(m *matcher.Matcher, res *matcher.Result) error {
	fmt.Fprintf(a.outW, "command: %s\n", a.pathString(m, res))
	fmt.Fprintf(a.outW, "flags: %s\n", a.namesString(res.Flags))
	fmt.Fprintf(a.outW, "arguments: %s\n", orNone(strings.Join(res.Args, " ")))
	fmt.Fprintf(a.outW, "unknown flags: %s\n", orNone(strings.Join(res.UnknownFlags, " ")))
	return nil
}

// pathString renders the full command path of the innermost matched
// subcommand, resolved through the ancestor walk.
func (a *App) pathString(m *matcher.Matcher, res *matcher.Result) string {
	current, ok := res.Current()
	if !ok {
		return "(top level)"
	}

	path, err := m.CommandPath(current)
	if err != nil {
		// The handle came from the matcher itself, so this is unreachable on
		// a well-formed graph; degrade to the innermost name.
		a.logger.Warn("Failed to resolve command path.", "error", err)
		path = nil
	}
	path = append(path, current)

	parts := make([]string, 0, len(path))
	for _, h := range path {
		payload, err := a.graph.Payload(h)
		if err != nil {
			continue
		}
		parts = append(parts, payload.Name())
	}
	return strings.Join(parts, " ")
}

func (a *App) namesString(handles []graph.NodeHandle) string {
	if len(handles) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(handles))
	for _, h := range handles {
		payload, err := a.graph.Payload(h)
		if err != nil {
			continue
		}
		parts = append(parts, payload.Name())
	}
	return strings.Join(parts, " ")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
