// Package app wires the pieces together: it configures the logger, loads the
// command declarations through a config.Loader, builds the command graph, and
// runs the matcher over the user's words.
package app
