package profile

// Profiler describes a profiling session.
type Profiler struct {
	Mode  string
	Dir   string
	Quiet bool
}

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Option configures a [Profiler].
type Option func(Profiler) Profiler

// New returns a Profiler with opts applied in order.
func New(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// WithMode sets the profiling mode. See [Modes].
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.Mode = mode

		return p
	}
}

// WithDir sets the directory profile files are written to.
func WithDir(dir string) Option {
	return func(p Profiler) Profiler {
		p.Dir = dir

		return p
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.Quiet = quiet

		return p
	}
}

// Start begins profiling. The returned Stopper is a no-op when Mode is empty,
// when Mode is not one of [Modes], or when the binary was built without the
// pprof tag. Stop is always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
