package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/funcad/log"
)

// resolveYAML returns a [kong.ConfigurationLoader] for YAML configuration
// files.
//
// Nested mappings are flattened by joining keys with "-", so both of these
// set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Underscores may stand in for hyphens. Sequences become comma-separated
// lists. Command-line flags override configuration values.
//
// A file that is not valid YAML is ignored with a warning, so a broken
// configuration never prevents running --help.
func resolveYAML(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if !errors.Is(err, io.EOF) {
				log.WarnContext(ctx, "configuration ignored",
					slog.String("error", err.Error()))
			}

			return config{}, nil
		}

		cfg := config{}
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] over flattened configuration keys.
type config map[string]any

func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := strings.ReplaceAll(k, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := v.(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = scalar(v)
	}
}

// scalar converts a decoded YAML value to a form kong's mappers accept.
// Numbers become strings for parsing by the flag's own type.
func scalar(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = fmt.Sprint(scalar(e))
		}

		return strings.Join(parts, ",")
	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[strings.ReplaceAll(flag.Name, "_", "-")]; ok {
		return value, nil
	}

	return nil, nil
}
