package generator

import (
	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/stream"
)

// Options is generator options
type Options struct {
	selector *stream.Selector
	counter  counter.Counter
}

// Option is option setter for generator
type Option func(*Options)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.selector == nil {
		opt.selector = stream.NewSelector()
	}
	if opt.counter == nil {
		opt.counter = counter.Nop
	}

	return opt
}

// WithSelector shares a selector between generators
func WithSelector(s *stream.Selector) Option {
	return func(opts *Options) {
		opts.selector = s
	}
}

// WithCounter counts every generated value
func WithCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.counter = c
	}
}
