package resp

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tutils/trand/generator"
)

// Options is RESP server options
type Options struct {
	addr      string
	gen       *generator.Generator
	idleClose time.Duration
	logger    logrus.FieldLogger
}

// Option is option setter for resp server
type Option func(*Options)

// default resp server options
var (
	DefaultListenAddress = "0.0.0.0:6380"
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.gen == nil {
		opt.gen = generator.New()
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

// WithGenerator sets the generator serving commands
func WithGenerator(g *generator.Generator) Option {
	return func(opts *Options) {
		opts.gen = g
	}
}

// WithIdleClose closes connections idle for longer than d
func WithIdleClose(d time.Duration) Option {
	return func(opts *Options) {
		opts.idleClose = d
	}
}

// WithLogger sets the server logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(opts *Options) {
		opts.logger = l
	}
}
