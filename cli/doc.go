// Package cli contains the command line interface for funcad.
//
// # Usage
//
//	funcad [flags] <command> [args]
//
// Every command reads a formula document from a file, or from stdin when the
// source is "-" or omitted.
//
// # Commands
//
//   - fmt [native|json|yaml|tree] [source]: Print the document in canonical
//     source form (the default), as JSON, as YAML, or as an outline of nodes
//     and positions. "fmt native -w file" rewrites the file in place.
//   - check [-q] source...: Parse every source and report each syntax error.
//     Sources naming the same file are checked once.
//   - imports [source]: List the imports of a document with the alias each
//     one binds.
//   - repl [source]: Start an interactive session, optionally preloaded with
//     a document. See package [github.com/ardnew/funcad/cli/cmd/repl].
//
// # Configuration
//
// Flag defaults may be overridden by config.json or config.yaml in the
// funcad configuration directory ($XDG_CONFIG_HOME/funcad). YAML keys may be
// nested, so
//
//	log:
//	  level: debug
//	  format: json
//
// sets --log-level and --log-format. Command line flags take precedence.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, a Go layout,
//     or none)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output on terminals
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o funcad .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/funcad/pprof)
//
// # Examples
//
//	# Reformat a document in place
//	funcad fmt -w shapes.fcd
//
//	# Check several documents with debug logging
//	funcad --log-level=debug check a.fcd b.fcd
//
//	# Dump the syntax tree of stdin as YAML
//	echo 'area(w, h) = w * h' | funcad fmt yaml
package cli
