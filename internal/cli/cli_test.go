package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("full configuration", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse([]string{
			"--commands", "defs/",
			"--format", "hcl",
			"--log-level", "debug",
			"--log-format", "json",
			"remote", "add", "origin",
		}, out)

		require.NoError(t, err)
		require.False(t, shouldExit)
		require.NotNil(t, cfg)
		assert.Equal(t, "defs/", cfg.CommandsPath)
		assert.Equal(t, "hcl", cfg.Format)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, []string{"remote", "add", "origin"}, cfg.Words)
	})

	t.Run("shorthand path flag", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse([]string{"-c", "commands.hcl"}, out)

		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, "commands.hcl", cfg.CommandsPath)
		assert.Equal(t, "auto", cfg.Format)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(nil, out)

		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("help flag exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, shouldExit, err := Parse([]string{"-h"}, out)

		require.NoError(t, err)
		assert.True(t, shouldExit)
	})

	t.Run("invalid format", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := Parse([]string{"-c", "x", "--format", "toml"}, out)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "invalid format")
	})

	t.Run("invalid log-level", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := Parse([]string{"-c", "x", "--log-level", "loud"}, out)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log-format", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := Parse([]string{"-c", "x", "--log-format", "xml"}, out)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Message, "invalid log-format")
	})

	t.Run("unknown flag", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, _, err := Parse([]string{"--bogus"}, out)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}
