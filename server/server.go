// Package server exposes the generator over HTTP and websocket.
//
//	GET /v1/kinds
//	GET /v1/{kind}?seed=&count=&min=&max=&precision=&scale=&n=
//	GET /v1/stream   (websocket, one JSON request per text message)
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/spf13/cast"
	"github.com/tutils/trand"
	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/generator"
)

// APIResponse is the response envelope of every endpoint
type APIResponse struct {
	ID      string `json:"id,omitempty"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Server serves generated values.
type Server struct {
	opts Options
	srv  *http.Server
	done chan struct{}
}

// New create a new Server
func New(opts ...Option) *Server {
	opt := newOptions(opts...)
	s := &Server{
		opts: *opt,
		done: make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/kinds", s.handleKinds)
	mux.HandleFunc("GET /v1/stream", s.handleStream)
	mux.HandleFunc("GET /v1/{kind}", s.handleGenerate)
	s.srv = &http.Server{
		Addr:    opt.addr,
		Handler: mux,
	}
	return s
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	log := s.opts.logger
	log.Infof("http server listening on %s", ln.Addr())
	go counter.Report(s.opts.counter, s.opts.statsPeriod, s.done, func(value, rate int64) {
		log.WithField("generated", value).WithField("per_sec", rate).Info("generator stats")
	})

	err := s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.opts.logger.Errorf("encode response: %v", err)
	}
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: generator.Kinds()})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, n, err := parseQuery(r.PathValue("kind"), r.URL.Query())
	if err == nil {
		err = s.checkBatch(n)
	}
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, APIResponse{Error: err.Error()})
		return
	}

	values, err := s.opts.gen.GenerateN(r.Context(), req, n)
	if err != nil {
		status := http.StatusInternalServerError
		if trand.IsDomainError(err) {
			status = http.StatusBadRequest
		} else {
			s.opts.logger.WithField("remote", r.RemoteAddr).Errorf("generate %s: %v", req.Kind, err)
		}
		s.writeJSON(w, status, APIResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: values})
}

func (s *Server) checkBatch(n int) error {
	if n > s.opts.maxBatch {
		return trand.NewDomainError("n", "at most %d values per request (%d)", s.opts.maxBatch, n)
	}
	return nil
}

func queryValue(q url.Values, key string) any {
	if v := q.Get(key); v != "" {
		return v
	}
	return nil
}

func queryInt(q url.Values, key string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, trand.NewDomainError(key, "invalid value %q", v)
	}
	return n, nil
}

func queryUint32(q url.Values, key string) (uint32, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := generator.ToUint32E(v)
	if err != nil {
		return 0, trand.NewDomainError(key, "invalid value %q", v)
	}
	return n, nil
}

// parseQuery builds a request from URL parameters.
func parseQuery(kind string, q url.Values) (generator.Request, int, error) {
	var req generator.Request
	k, err := generator.ParseKind(kind)
	if err != nil {
		return req, 0, err
	}
	req.Kind = k
	if req.Seed, err = queryUint32(q, "seed"); err != nil {
		return req, 0, err
	}
	if req.Count, err = queryUint32(q, "count"); err != nil {
		return req, 0, err
	}
	req.Min = queryValue(q, "min")
	req.Max = queryValue(q, "max")
	if req.Precision, err = queryInt(q, "precision", 0); err != nil {
		return req, 0, err
	}
	if req.Scale, err = queryInt(q, "scale", 0); err != nil {
		return req, 0, err
	}
	n, err := queryInt(q, "n", 1)
	return req, n, err
}
