package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/funcad/log"
)

// logLevel configures the default logger's level as a side effect of
// parsing, so the level applies to messages logged while kong is still
// parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	var level log.Level
	if err := level.UnmarshalText(text); err != nil {
		return err
	}

	*l = logLevel(level.String())
	log.Config(log.WithLevel(level))

	return nil
}

// logFormat configures the default logger's format as a side effect of
// parsing.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	var format log.Format
	if err := format.UnmarshalText(text); err != nil {
		return err
	}

	*f = logFormat(format.String())
	log.Config(log.WithFormat(format))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"${logLevel}"  enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"${logFormat}" enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                              help:"Set timestamp layout: a time package layout name, a Go layout, or none."`
	Caller     bool      `default:"false"                                help:"Include caller information."                     negatable:""`
	Pretty     bool      `default:"true"                                 help:"Colorize text logs on terminals."                negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevel":      log.DefaultLevel.String(),
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormat":     log.DefaultFormat.String(),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies every parsed logging option to the default logger.
func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logger flags found in args before kong parses them, so the
// logger is configured regardless of flag position. Boolean flags never pass
// through a TextUnmarshaler, so this is the only early hook for them.
// Scanning stops at "--".
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		switch name {
		case "--":
			return

		case "--log-level", "--log-format", "--log-time-layout":
			if !assigned {
				if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
					continue
				}

				i++
				value = args[i]
			}

			switch name {
			case "--log-level":
				_ = f.Level.UnmarshalText([]byte(value))
			case "--log-format":
				_ = f.Format.UnmarshalText([]byte(value))
			default:
				f.TimeLayout = value
				log.Config(log.WithTimeLayout(value))
			}

		case "--log-pretty", "--no-log-pretty", "--log-caller", "--no-log-caller":
			on := true

			if assigned {
				v, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				on = v
			}

			if strings.HasPrefix(name, "--no-") {
				on = !on
			}

			if strings.HasSuffix(name, "pretty") {
				f.Pretty = on
				log.Config(log.WithPretty(on))
			} else {
				f.Caller = on
				log.Config(log.WithCaller(on))
			}
		}
	}
}
