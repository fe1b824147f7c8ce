package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutils/trand/generator"
	"github.com/tutils/trand/stream"
	"github.com/tutils/trand/synth"
)

type rawResponse struct {
	ID      string            `json:"id"`
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
	Error   string            `json:"error"`
}

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	logger, _ := test.NewNullLogger()
	opts = append([]Option{WithLogger(logger)}, opts...)
	ts := httptest.NewServer(New(opts...).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, rawResponse) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out rawResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestGenerateEndpoint(t *testing.T) {
	ts := newTestServer(t)

	status, resp := get(t, ts.URL+"/v1/int?seed=7&count=1&min=0&max=100&n=5")
	require.Equal(t, http.StatusOK, status)
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 5)

	st := stream.Derive(7, 0)
	want, _ := synth.Int32(&st, 0, 100)
	for _, d := range resp.Data {
		var v int32
		require.NoError(t, json.Unmarshal(d, &v))
		assert.Equal(t, want, v)
	}

	status, resp = get(t, ts.URL+"/v1/cidr2?seed=1&count=10")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Data, 1)
	var cidr string
	require.NoError(t, json.Unmarshal(resp.Data[0], &cidr))
	assert.Contains(t, cidr, "/")
}

func TestGenerateEndpointErrors(t *testing.T) {
	ts := newTestServer(t, WithMaxBatch(10))

	for _, q := range []string{
		"/v1/string?seed=1&count=10&min=5&max=3",
		"/v1/int?seed=1&count=0",
		"/v1/int?seed=x&count=1",
		"/v1/int?seed=1&count=1&n=11",
		"/v1/money?seed=1&count=1",
		"/v1/int?seed=1&count=1&min=-5000000000&max=0",
		"/v1/int?seed=1&count=1&min=0&max=2147483648",
		"/v1/int?seed=4294967296&count=1",
		"/v1/real?seed=1&count=1&min=0&max=1e39",
	} {
		status, resp := get(t, ts.URL+q)
		assert.Equal(t, http.StatusBadRequest, status, q)
		assert.False(t, resp.Success, q)
		assert.NotEmpty(t, resp.Error, q)
	}
}

func TestKindsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	status, resp := get(t, ts.URL+"/v1/kinds")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Data, len(generator.Kinds()))
}

func TestStream(t *testing.T) {
	ts := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"id":"a","kind":"bigint","seed":7,"count":1,"min":-9007199254740993,"max":"9007199254740993","n":3}`)))
	var resp rawResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "a", resp.ID)
	require.True(t, resp.Success, resp.Error)
	require.Len(t, resp.Data, 3)

	st := stream.Derive(7, 0)
	want, _ := synth.Int64(&st, -9007199254740993, 9007199254740993)
	var got int64
	require.NoError(t, json.Unmarshal(resp.Data[0], &got))
	assert.Equal(t, want, got)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"id":"b","kind":"bytea","seed":1,"count":3,"min":5,"max":3}`)))
	resp = rawResponse{}
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "b", resp.ID)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "length")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	resp = rawResponse{}
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Contains(t, resp.Error, "invalid request")
}

func TestShutdown(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := New(WithLogger(logger), WithListenAddress("127.0.0.1:0"))

	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe() }()
	require.Eventually(t, func() bool { return len(hook.AllEntries()) > 0 }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Shutdown(t.Context()))
	require.NoError(t, <-errc)
	assert.Contains(t, hook.AllEntries()[0].Message, "listening")
}
