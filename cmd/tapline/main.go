package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/tapline/internal/app"
	"github.com/vk/tapline/internal/cli"
	"github.com/vk/tapline/internal/config"
	"github.com/vk/tapline/internal/hclcfg"
	"github.com/vk/tapline/internal/yamlcfg"
)

// main is the entrypoint for the tapline binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (unreadable or broken
	// definitions); recover here to hand the user a clean message.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := pickLoader(appConfig)
	taplineApp := app.NewApp(outW, appConfig, loader)

	return taplineApp.Run(context.Background(), appConfig)
}

// pickLoader selects the definition loader from the configured format, or
// from the path's extension when the format is "auto".
func pickLoader(appConfig *app.Config) config.Loader {
	format := appConfig.Format
	if format == "auto" {
		format = "hcl"
		for _, ext := range yamlcfg.Extensions {
			if strings.HasSuffix(appConfig.CommandsPath, ext) {
				format = "yaml"
				break
			}
		}
	}
	if format == "yaml" {
		return yamlcfg.NewLoader()
	}
	return hclcfg.NewLoader()
}
