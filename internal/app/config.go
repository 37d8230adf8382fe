package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CommandsPath string // definition file or directory
	Format       string // "auto", "hcl" or "yaml"

	LogFormat string
	LogLevel  string

	Words []string // words to resolve against the declared tree
}

// NewConfig validates a Config value and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CommandsPath == "" {
		return nil, errors.New("CommandsPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
