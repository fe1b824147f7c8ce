// Package client requests generated values from a trand server over its
// websocket stream.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tutils/trand/generator"
	"github.com/tutils/trand/server"
)

// ErrClosed is returned by requests on a closed client.
var ErrClosed = errors.New("client closed")

type response struct {
	ID      string            `json:"id"`
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
	Error   string            `json:"error"`
}

// Client multiplexes requests over one websocket connection. Responses are
// matched to requests by id, so a Client is safe for concurrent use.
type Client struct {
	opts ClientOptions
	conn *websocket.Conn

	wmu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan response
	err     error
	done    chan struct{}
}

// Dial connects to a trand stream endpoint.
func Dial(ctx context.Context, opts ...ClientOption) (*Client, error) {
	opt := newClientOptions(opts...)
	conn, _, err := opt.dialer.DialContext(ctx, opt.addr, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", opt.addr, err)
	}

	c := &Client{
		opts:    *opt,
		conn:    conn,
		pending: make(map[string]chan response),
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// readLoop also answers server pings, which gorilla handles inside reads.
func (c *Client) readLoop() {
	defer close(c.done)
	for {
		var resp response
		if err := c.conn.ReadJSON(&resp); err != nil {
			c.mu.Lock()
			c.err = err
			c.mu.Unlock()
			return
		}
		c.mu.Lock()
		ch := c.pending[resp.ID]
		delete(c.pending, resp.ID)
		c.mu.Unlock()
		if ch != nil {
			ch <- resp
		}
	}
}

func (c *Client) closeErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil || websocket.IsCloseError(c.err, websocket.CloseNormalClosure) {
		return ErrClosed
	}
	return c.err
}

// Generate asks the server for n values of req and returns them as the JSON
// the server sent.
func (c *Client) Generate(ctx context.Context, req generator.Request, n int) ([]json.RawMessage, error) {
	select {
	case <-c.done:
		return nil, c.closeErr()
	default:
	}

	id := uuid.NewString()
	ch := make(chan response, 1)
	c.mu.Lock()
	c.pending[id] = ch
	c.mu.Unlock()
	cancel := func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}

	c.wmu.Lock()
	c.conn.SetWriteDeadline(time.Now().Add(c.opts.writeTimeout))
	err := c.conn.WriteJSON(server.StreamRequest{Request: req, ID: id, N: n})
	c.wmu.Unlock()
	if err != nil {
		cancel()
		return nil, err
	}

	select {
	case resp := <-ch:
		if !resp.Success {
			return nil, fmt.Errorf("remote: %s", resp.Error)
		}
		return resp.Data, nil
	case <-ctx.Done():
		cancel()
		return nil, ctx.Err()
	case <-c.done:
		return nil, c.closeErr()
	}
}

// Close sends a close frame and waits for the read loop to stop.
func (c *Client) Close() error {
	c.wmu.Lock()
	err := c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(c.opts.writeTimeout))
	c.wmu.Unlock()

	select {
	case <-c.done:
	case <-time.After(c.opts.writeTimeout):
	}
	if cerr := c.conn.Close(); err == nil {
		err = cerr
	}
	return err
}
