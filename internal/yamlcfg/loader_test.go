package yamlcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/tapline/internal/config"
)

func writeDefinition(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("full tree", func(t *testing.T) {
		path := writeDefinition(t, "commands.yaml", `
flags:
  - name: help
    short: h
    long: help
commands:
  - name: remote
    aliases: [rem]
    flags:
      - name: verbose
        short: V
        long: verbose
    commands:
      - name: add
        flags:
          - name: track
            long: track
            takes_arg: true
            default: main
`)

		model, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)

		require.Len(t, model.Flags, 1)
		assert.Equal(t, "help", model.Flags[0].Name)
		assert.Equal(t, 'h', model.Flags[0].Short)

		require.Len(t, model.Commands, 1)
		remote := model.Commands[0]
		assert.Equal(t, []string{"rem"}, remote.Aliases)
		require.Len(t, remote.Commands, 1)
		require.Len(t, remote.Commands[0].Flags, 1)

		track := remote.Commands[0].Flags[0]
		require.NotNil(t, track.Default)
		assert.Equal(t, cty.StringVal("main"), *track.Default)
	})

	t.Run("typed defaults", func(t *testing.T) {
		path := writeDefinition(t, "commands.yaml", `
commands:
  - name: run
    flags:
      - name: workers
        long: workers
        takes_arg: true
        default: 10
      - name: strict
        long: strict
        takes_arg: true
        default: true
`)

		model, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)

		flags := model.Commands[0].Flags
		require.Len(t, flags, 2)
		require.NotNil(t, flags[0].Default)
		assert.Equal(t, cty.Number, flags[0].Default.Type())
		require.NotNil(t, flags[1].Default)
		assert.Equal(t, cty.True, *flags[1].Default)
	})

	t.Run("short yml extension is claimed too", func(t *testing.T) {
		path := writeDefinition(t, "commands.yml", `
commands:
  - name: status
`)

		model, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, model.Commands, 1)
		assert.Equal(t, "status", model.Commands[0].Name)
	})

	t.Run("decode error", func(t *testing.T) {
		path := writeDefinition(t, "broken.yaml", "commands: [\n")
		_, err := NewLoader().Load(ctx, path)
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("default without takes_arg", func(t *testing.T) {
		path := writeDefinition(t, "commands.yaml", `
flags:
  - name: mode
    long: mode
    default: fast
`)
		_, err := NewLoader().Load(ctx, path)
		require.ErrorIs(t, err, config.ErrInvalidDefinition)
		assert.ErrorContains(t, err, "takes_arg")
	})

	t.Run("model validation failures surface", func(t *testing.T) {
		path := writeDefinition(t, "commands.yaml", `
commands:
  - name: twin
  - name: twin
`)
		_, err := NewLoader().Load(ctx, path)
		assert.ErrorIs(t, err, config.ErrInvalidDefinition)
	})
}
