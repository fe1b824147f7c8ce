package server

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/generator"
)

// Options is server options
type Options struct {
	addr        string
	gen         *generator.Generator
	counter     counter.Counter
	statsPeriod time.Duration
	maxBatch    int
	logger      logrus.FieldLogger
}

// Option is option setter for server
type Option func(*Options)

// default server options
var (
	DefaultListenAddress = "0.0.0.0:8080"
	DefaultMaxBatch      = 10000
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.counter == nil {
		opt.counter = counter.Nop
	}
	if opt.gen == nil {
		opt.gen = generator.New(generator.WithCounter(opt.counter))
	}
	if opt.maxBatch <= 0 {
		opt.maxBatch = DefaultMaxBatch
	}
	if opt.logger == nil {
		opt.logger = logrus.StandardLogger()
	}

	return opt
}

// WithListenAddress sets server listen address opt
func WithListenAddress(addr string) Option {
	return func(opts *Options) {
		opts.addr = addr
	}
}

// WithGenerator sets the generator serving requests
func WithGenerator(g *generator.Generator) Option {
	return func(opts *Options) {
		opts.gen = g
	}
}

// WithCounter sets the counter reported every stats period
func WithCounter(c counter.Counter) Option {
	return func(opts *Options) {
		opts.counter = c
	}
}

// WithStatsPeriod sets how often throughput is logged; zero disables it
func WithStatsPeriod(d time.Duration) Option {
	return func(opts *Options) {
		opts.statsPeriod = d
	}
}

// WithMaxBatch limits the number of values returned by one request
func WithMaxBatch(n int) Option {
	return func(opts *Options) {
		opts.maxBatch = n
	}
}

// WithLogger sets the server logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(opts *Options) {
		opts.logger = l
	}
}
