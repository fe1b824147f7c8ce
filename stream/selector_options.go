package stream

// SelectorOptions is selector options
type SelectorOptions struct {
	entropy EntropyFunc
}

// SelectorOption is option setter for selector
type SelectorOption func(*SelectorOptions)

// default selector options
var (
	DefaultEntropy EntropyFunc = SystemEntropy
)

func newSelectorOptions(opts ...SelectorOption) *SelectorOptions {
	opt := &SelectorOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.entropy == nil {
		opt.entropy = DefaultEntropy
	}

	return opt
}

// WithEntropy sets the source of the selector's initial seed
func WithEntropy(f EntropyFunc) SelectorOption {
	return func(opts *SelectorOptions) {
		opts.entropy = f
	}
}

// WithSeed seeds the selector with a fixed value, making index selection
// reproducible as well. A zero seed keeps the default entropy source.
func WithSeed(seed uint64) SelectorOption {
	return func(opts *SelectorOptions) {
		if seed != 0 {
			opts.entropy = FixedEntropy(seed)
		}
	}
}
