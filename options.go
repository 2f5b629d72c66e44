package wrapped

// Option configures a Window.
type Option func(*options)

// options holds window configuration keyed by OptKey name.
type options struct {
	values map[string]any
}

// OptKey is a typed key for window options. Hosts can define their own keys
// and read them back with ApplyAndGet when wrapping a Window.
//
// Example:
//
//	var OptPrefetchRows = wrapped.NewOptKey("prefetchRows", 0)
//
//	w, err := wrapped.NewWindow(layout, wrapped.WithOpt(OptPrefetchRows, 2))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// getOpt retrieves an option value, or the key's default if unset.
func getOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.values[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return getOpt(applyOptions(opts), key)
}

// Built-in window options.
var (
	// OptBuffer is extra vertical prefetch above and below the query rect.
	OptBuffer = NewOptKey[float32]("buffer", 0)
	// OptSlackDivisor sets the built-in slack to visible height / divisor.
	OptSlackDivisor = NewOptKey[float32]("slackDivisor", 8)
	// OptCoverage is the fraction of the visible height the cached query
	// must still overlap before a re-query is skipped.
	OptCoverage   = NewOptKey[float32]("coverage", 1.2)
	OptConvention = NewOptKey[Convention]("convention", TopLeft)
)

// WithBuffer sets the prefetch margin beyond the built-in slack.
func WithBuffer(b float32) Option { return WithOpt(OptBuffer, b) }

// WithConvention sets how visible rects are resolved from host geometry.
func WithConvention(c Convention) Option { return WithOpt(OptConvention, c) }

// WithSlackDivisor overrides the built-in slack (visible height / 8).
func WithSlackDivisor(d float32) Option { return WithOpt(OptSlackDivisor, d) }

// WithCoverage overrides the re-query threshold (1.2 visible heights).
func WithCoverage(c float32) Option { return WithOpt(OptCoverage, c) }
