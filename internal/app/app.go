package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/tapline/internal/arg"
	"github.com/vk/tapline/internal/builder"
	"github.com/vk/tapline/internal/config"
	"github.com/vk/tapline/internal/ctxlog"
	"github.com/vk/tapline/internal/graph"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: the loaded model and the command graph built from it.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
	graph  *graph.Graph[arg.Arg]
}

// NewApp is the constructor for the main application. It loads the command
// declarations and builds the graph up front; a broken declaration is a
// fatal startup error and panics, to be recovered at the run boundary.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.CommandsPath)
	if err != nil {
		panic(fmt.Errorf("failed to load command definitions: %w", err))
	}
	logger.Debug("Command definitions loaded.",
		"binary_flags", len(model.Flags), "commands", len(model.Commands))

	g, err := builder.Build(ctx, model)
	if err != nil {
		panic(fmt.Errorf("failed to build command graph: %w", err))
	}
	logger.Debug("Command graph built.",
		"node_count", g.NodeCount(), "edge_count", g.EdgeCount())

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
		graph:  g,
	}
}

// Graph returns the built command graph. This is primarily for testing.
func (a *App) Graph() *graph.Graph[arg.Arg] {
	return a.graph
}
