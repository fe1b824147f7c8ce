package sink

import (
	"github.com/sirupsen/logrus"
	"github.com/tutils/trand/generator"
)

// Options is fill options
type Options struct {
	gen    *generator.Generator
	count  uint32
	logger logrus.FieldLogger
}

// Option is option setter for Fill
type Option func(*Options)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.gen == nil {
		opt.gen = generator.New()
	}
	if opt.logger == nil {
		opt.logger = logrus.StandardLogger()
	}

	return opt
}

// WithGenerator sets the generator producing column values
func WithGenerator(g *generator.Generator) Option {
	return func(opts *Options) {
		opts.gen = g
	}
}

// WithCount sets the number of distinct values per column; zero means one
// per row
func WithCount(n uint32) Option {
	return func(opts *Options) {
		opts.count = n
	}
}

// WithLogger sets the fill logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(opts *Options) {
		opts.logger = l
	}
}
