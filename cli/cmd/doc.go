// Package cmd implements the funcad subcommands: fmt, check, imports and
// repl.
//
// Each command is a kong command struct whose Run method receives the
// [context.Context] bound by the cli package. Output goes to the writer
// stored with [WithOutput], or to standard output.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
