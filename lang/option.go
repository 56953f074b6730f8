package lang

import "github.com/ardnew/funcad/log"

// Option configures a parse.
type Option func(*config)

type config struct {
	logger log.Logger
}

func makeConfig(opts ...Option) config {
	var c config

	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithLogger sets the logger that receives trace records for each parse.
// By default nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(c *config) { c.logger = logger }
}
