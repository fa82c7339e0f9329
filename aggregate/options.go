package aggregate

// Strategy selects how adjacent tokens are looked up.
type Strategy int

const (
	// Indexed consults a row-bucketed Index (default).
	Indexed Strategy = iota
	// Naive compares every symbol with every token.
	Naive
)

// Options configures aggregation.
type Options struct {
	// Strategy selects the adjacency lookup.
	Strategy Strategy
}

// Option configures aggregation via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with Strategy=Indexed.
func DefaultOptions() Options {
	return Options{Strategy: Indexed}
}

// WithNaive selects the O(S×T) double loop.
func WithNaive() Option {
	return func(o *Options) {
		o.Strategy = Naive
	}
}

// WithStrategy selects s explicitly. Unknown values fall back to Indexed.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s == Naive {
			o.Strategy = Naive
			return
		}
		o.Strategy = Indexed
	}
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
