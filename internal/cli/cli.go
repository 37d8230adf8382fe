package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/tapline/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("tapline", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Tapline - a declarative command hierarchy registry and matcher.

Usage:
  tapline [options] [--] word...

The words after the options are resolved against the declared command tree:
subcommands are entered by name or alias, flags are matched in their scope,
and everything else is reported as arguments or unknowns.

Options:
`)
		flagSet.PrintDefaults()
	}

	commandsFlag := flagSet.String("commands", "", "Path to a definition file or a directory of definition files.")
	cFlag := flagSet.String("c", "", "Path to a definition file or directory (shorthand).")
	formatFlag := flagSet.String("format", "auto", "Definition format. Options: 'auto', 'hcl' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *commandsFlag
	if path == "" {
		path = *cFlag
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	switch format {
	case "auto", "hcl", "yaml":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'auto', 'hcl' or 'yaml'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		CommandsPath: path,
		Format:       format,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Words:        flagSet.Args(),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
