package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandMatches(t *testing.T) {
	cmd := Command{Name: "remote", Aliases: []string{"rem", "r"}}

	assert.True(t, cmd.Matches("remote"))
	assert.True(t, cmd.Matches("rem"))
	assert.True(t, cmd.Matches("r"))
	assert.False(t, cmd.Matches("remot"))
	assert.False(t, cmd.Matches(""))
}

func TestValidate(t *testing.T) {
	t.Run("well-formed model", func(t *testing.T) {
		m := &Model{
			Flags: []Flag{HelpFlag(), VersionFlag()},
			Commands: []Command{
				{
					Name:    "remote",
					Aliases: []string{"rem"},
					Flags:   []Flag{VerboseFlag()},
					Commands: []Command{
						{Name: "add", Flags: []Flag{DebugFlag()}},
						{Name: "remove", Aliases: []string{"rm"}},
					},
				},
				{Name: "status"},
			},
		}
		assert.NoError(t, m.Validate())
	})

	t.Run("empty command name", func(t *testing.T) {
		m := &Model{Commands: []Command{{Name: ""}}}
		err := m.Validate()
		require.ErrorIs(t, err, ErrInvalidDefinition)
		assert.ErrorContains(t, err, "empty name")
	})

	t.Run("non-word characters in name", func(t *testing.T) {
		m := &Model{Commands: []Command{{Name: "bad name!"}}}
		err := m.Validate()
		require.ErrorIs(t, err, ErrInvalidDefinition)
		assert.ErrorContains(t, err, "non-word characters")
	})

	t.Run("nested invalid name", func(t *testing.T) {
		m := &Model{Commands: []Command{
			{Name: "ok", Commands: []Command{{Name: "not ok"}}},
		}}
		assert.ErrorIs(t, m.Validate(), ErrInvalidDefinition)
	})

	t.Run("duplicate sibling names", func(t *testing.T) {
		m := &Model{Commands: []Command{{Name: "twin"}, {Name: "twin"}}}
		err := m.Validate()
		require.ErrorIs(t, err, ErrInvalidDefinition)
		assert.ErrorContains(t, err, "collides with sibling")
	})

	t.Run("alias colliding with sibling name", func(t *testing.T) {
		m := &Model{Commands: []Command{
			{Name: "status"},
			{Name: "state", Aliases: []string{"status"}},
		}}
		assert.ErrorIs(t, m.Validate(), ErrInvalidDefinition)
	})

	t.Run("same name on different levels is fine", func(t *testing.T) {
		m := &Model{Commands: []Command{
			{Name: "remote", Commands: []Command{{Name: "remote"}}},
		}}
		assert.NoError(t, m.Validate())
	})

	t.Run("duplicate flag name in one scope", func(t *testing.T) {
		m := &Model{Flags: []Flag{HelpFlag(), HelpFlag()}}
		err := m.Validate()
		require.ErrorIs(t, err, ErrInvalidDefinition)
		assert.ErrorContains(t, err, "duplicate flag name")
	})

	t.Run("duplicate short form in one scope", func(t *testing.T) {
		m := &Model{Commands: []Command{{
			Name: "cmd",
			Flags: []Flag{
				{Name: "human", Short: 'h'},
				{Name: "help", Short: 'h'},
			},
		}}}
		err := m.Validate()
		require.ErrorIs(t, err, ErrInvalidDefinition)
		assert.ErrorContains(t, err, "short form")
	})

	t.Run("duplicate long form in one scope", func(t *testing.T) {
		m := &Model{Flags: []Flag{
			{Name: "one", Long: "output"},
			{Name: "two", Long: "output"},
		}}
		err := m.Validate()
		require.ErrorIs(t, err, ErrInvalidDefinition)
		assert.ErrorContains(t, err, "long form")
	})

	t.Run("same flag in different scopes is fine", func(t *testing.T) {
		m := &Model{
			Flags: []Flag{HelpFlag()},
			Commands: []Command{
				{Name: "one", Flags: []Flag{HelpFlag()}},
				{Name: "two", Flags: []Flag{HelpFlag()}},
			},
		}
		assert.NoError(t, m.Validate())
	})
}

func TestCannedFlags(t *testing.T) {
	assert.Equal(t, Flag{Name: "help", Short: 'h', Long: "help"}, HelpFlag())
	assert.Equal(t, Flag{Name: "verbose", Short: 'V', Long: "verbose"}, VerboseFlag())
	assert.Equal(t, Flag{Name: "version", Short: 'v', Long: "version"}, VersionFlag())
	assert.Equal(t, Flag{Name: "license", Short: 'L', Long: "license"}, LicenseFlag())
	assert.Equal(t, Flag{Name: "debug", Short: 'd', Long: "debug"}, DebugFlag())
}
