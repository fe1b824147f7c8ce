package client

import (
	"time"

	"github.com/gorilla/websocket"
)

// ClientOptions is client options
type ClientOptions struct {
	addr         string
	dialer       *websocket.Dialer
	writeTimeout time.Duration
}

// ClientOption is option setter for client
type ClientOption func(*ClientOptions)

// default client options
var (
	DefaultConnectAddress = "ws://127.0.0.1:8080/v1/stream"
	DefaultWriteTimeout   = time.Second * 5
)

func newClientOptions(opts ...ClientOption) *ClientOptions {
	opt := &ClientOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultConnectAddress
	}
	if opt.dialer == nil {
		opt.dialer = websocket.DefaultDialer
	}
	if opt.writeTimeout <= 0 {
		opt.writeTimeout = DefaultWriteTimeout
	}

	return opt
}

// WithConnectAddress sets the websocket stream url
func WithConnectAddress(addr string) ClientOption {
	return func(opts *ClientOptions) {
		opts.addr = addr
	}
}

// WithDialer sets the websocket dialer
func WithDialer(d *websocket.Dialer) ClientOption {
	return func(opts *ClientOptions) {
		opts.dialer = d
	}
}

// WithWriteTimeout bounds each request write
func WithWriteTimeout(d time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.writeTimeout = d
	}
}
