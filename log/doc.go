// Package log is a small structured logging layer over [log/slog].
//
// A [Logger] is an immutable value. Configuration is applied with functional
// options when the logger is created with [Make], and [Logger.Wrap] derives a
// new logger with some options overridden:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//
// A zero Logger discards everything, so libraries can accept a Logger
// argument without forcing callers to configure one.
//
// # Levels
//
// In addition to the slog levels, [LevelTrace] sits below [LevelDebug] and is
// used for per-call parser diagnostics.
//
// # Default logger
//
// The package-level functions ([InfoContext], [ErrorContext], and friends)
// write through a process-wide default logger. [Config] replaces it; it is
// safe to call concurrently with logging.
//
// # Pretty output
//
// With [WithPretty], text output styles keys, values, and levels with
// lipgloss. Colors are only emitted when the output is a terminal.
package log
