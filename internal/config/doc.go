// Package config defines the format-agnostic model of a declared command
// hierarchy: the binary's own flags plus a tree of named subcommands, each
// carrying aliases, flags and nested subcommands.
//
// A Model is a plain immutable value. Loaders (HCL, YAML) produce one, the
// builder consumes one; nothing mutates a Model after Load returns. Validate
// enforces the structural rules before any graph is built, so a broken
// declaration fails at startup rather than mid-match.
package config
