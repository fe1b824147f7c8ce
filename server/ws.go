package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tutils/trand/generator"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

// StreamRequest is one websocket message.
type StreamRequest struct {
	generator.Request
	ID string `json:"id,omitempty"`
	N  int    `json:"n,omitempty"`
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	log := s.opts.logger.WithField("remote", r.RemoteAddr)
	log.Debug("stream opened")

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
	done := make(chan struct{})
	defer close(done)
	go startPing(conn, done)

	ctx := r.Context()
	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warnf("stream read: %v", err)
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		resp := s.serveStreamMessage(ctx, msg)
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			log.Warnf("stream write: %v", err)
			return
		}
	}
}

func (s *Server) serveStreamMessage(ctx context.Context, msg []byte) APIResponse {
	var req StreamRequest
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return APIResponse{Error: "invalid request: " + err.Error()}
	}
	if req.N == 0 {
		req.N = 1
	}
	if err := s.checkBatch(req.N); err != nil {
		return APIResponse{ID: req.ID, Error: err.Error()}
	}

	values, err := s.opts.gen.GenerateN(ctx, req.Request, req.N)
	if err != nil {
		return APIResponse{ID: req.ID, Error: err.Error()}
	}
	return APIResponse{ID: req.ID, Success: true, Data: values}
}

// startPing only writes control frames; read deadlines stay with the reader.
func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
