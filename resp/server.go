// Package resp serves the generator over the Redis protocol, one command per
// SQL function:
//
//	RANDOM_INT seed count [min max]
//	RANDOM_STRING seed count minlen [maxlen]
//	RANDOM_NUMERIC seed count precision [scale]
//	RANDOM_INET seed count
package resp

import (
	"net"
	"strings"

	"github.com/tidwall/redcon"
)

// Server answers RESP commands.
type Server struct {
	opts Options
	srv  *redcon.Server
}

// New create a new Server
func New(opts ...Option) *Server {
	opt := newOptions(opts...)
	s := &Server{opts: *opt}
	s.srv = redcon.NewServer(opt.addr, s.handle, s.accept, s.closed)
	if opt.idleClose > 0 {
		s.srv.SetIdleClose(opt.idleClose)
	}
	return s
}

// Serve accepts connections on ln until Close.
func (s *Server) Serve(ln net.Listener) error {
	s.opts.logger.Infof("resp server listening on %s", ln.Addr())
	return s.srv.Serve(ln)
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Close stops listening and closes accepted connections.
func (s *Server) Close() error {
	return s.srv.Close()
}

func (s *Server) accept(conn redcon.Conn) bool {
	s.opts.logger.Debugf("resp connection from %s", conn.RemoteAddr())
	return true
}

func (s *Server) closed(conn redcon.Conn, err error) {
	if err != nil {
		s.opts.logger.Debugf("resp connection %s closed: %v", conn.RemoteAddr(), err)
	}
}

func (s *Server) handle(conn redcon.Conn, cmd redcon.Command) {
	if len(cmd.Args) == 0 {
		return
	}
	args := make([]string, len(cmd.Args))
	for i, a := range cmd.Args {
		args[i] = string(a)
	}
	name := strings.ToUpper(args[0])

	switch name {
	case "QUIT":
		conn.WriteString("OK")
		conn.Close()
		return
	case "PING":
		switch len(args) {
		case 1:
			conn.WriteString("PONG")
		case 2:
			conn.WriteBulkString(args[1])
		default:
			conn.WriteError(wrongArgs(args[0]).Error())
		}
		return
	case "COMMAND":
		names := commandNames()
		conn.WriteArray(len(names))
		for _, n := range names {
			conn.WriteBulkString(n)
		}
		return
	}

	c, ok := commands[name]
	if !ok {
		conn.WriteError("ERR unknown command '" + args[0] + "'")
		return
	}
	v, err := c.exec(s.opts.gen, args)
	if err != nil {
		conn.WriteError(errorReply(err))
		return
	}
	conn.WriteAny(v)
}
