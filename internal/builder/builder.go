// Package builder materializes a validated config.Model into the command
// graph: one root node per binary-level flag and per top-level command, with
// each command's flags and subcommands linked beneath it.
package builder

import (
	"context"
	"fmt"

	"github.com/vk/tapline/internal/arg"
	"github.com/vk/tapline/internal/config"
	"github.com/vk/tapline/internal/ctxlog"
	"github.com/vk/tapline/internal/graph"
)

// Build constructs the command graph for model. The model is validated
// first; a structurally broken declaration aborts construction. The returned
// graph is complete and is not mutated again.
func Build(ctx context.Context, model *config.Model) (*graph.Graph[arg.Arg], error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.")

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command model: %w", err)
	}

	g := graph.New[arg.Arg]()

	// Binary-level flags become standalone roots, declared order preserved.
	for i := range model.Flags {
		g.InsertNode(arg.ForFlag(&model.Flags[i]))
	}
	for i := range model.Commands {
		if err := insertCommand(g, &model.Commands[i], nil); err != nil {
			return nil, fmt.Errorf("failed to build command hierarchy: %w", err)
		}
	}

	logger.Debug("Build: graph construction complete.",
		"node_count", g.NodeCount(), "edge_count", g.EdgeCount())
	return g, nil
}

// insertCommand adds one command node (under parent when given), then its
// flags, then its subcommands, depth first.
func insertCommand(g *graph.Graph[arg.Arg], cmd *config.Command, parent *graph.NodeHandle) error {
	var h graph.NodeHandle
	payload := arg.ForCommand(cmd)
	if parent == nil {
		h = g.InsertNode(payload)
	} else {
		var err error
		if h, err = g.InsertNodeUnder(*parent, payload); err != nil {
			return err
		}
	}

	for i := range cmd.Flags {
		if _, err := g.InsertNodeUnder(h, arg.ForFlag(&cmd.Flags[i])); err != nil {
			return err
		}
	}
	for i := range cmd.Commands {
		if err := insertCommand(g, &cmd.Commands[i], &h); err != nil {
			return err
		}
	}
	return nil
}
