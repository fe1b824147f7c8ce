package client

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutils/trand/generator"
	"github.com/tutils/trand/server"
	"github.com/tutils/trand/stream"
	"github.com/tutils/trand/synth"
)

func dialTestServer(t *testing.T) *Client {
	logger, _ := test.NewNullLogger()
	ts := httptest.NewServer(server.New(server.WithLogger(logger)).Handler())
	t.Cleanup(ts.Close)

	c, err := Dial(t.Context(), WithConnectAddress("ws"+strings.TrimPrefix(ts.URL, "http")+"/v1/stream"))
	require.NoError(t, err)
	return c
}

func TestGenerate(t *testing.T) {
	c := dialTestServer(t)
	defer c.Close()

	st := stream.Derive(7, 0)
	want, err := synth.Int32(&st, 0, 100)
	require.NoError(t, err)

	data, err := c.Generate(t.Context(), generator.Request{Kind: generator.KindInt, Seed: 7, Count: 1, Min: 0, Max: "100"}, 3)
	require.NoError(t, err)
	require.Len(t, data, 3)
	for _, raw := range data {
		var got int32
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, want, got)
	}

	_, err = c.Generate(t.Context(), generator.Request{Kind: generator.KindInt, Seed: 7}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count")
}

func TestGenerateConcurrent(t *testing.T) {
	c := dialTestServer(t)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed uint32) {
			defer wg.Done()
			st := stream.Derive(seed, 0)
			n, _ := synth.Length(&st, 6, 6)
			want := synth.String(&st, n)

			data, err := c.Generate(t.Context(), generator.Request{Kind: generator.KindString, Seed: seed, Count: 1, Min: 6}, 2)
			if !assert.NoError(t, err) || !assert.Len(t, data, 2) {
				return
			}
			var got string
			assert.NoError(t, json.Unmarshal(data[1], &got))
			assert.Equal(t, want, got)
		}(uint32(i))
	}
	wg.Wait()
}

func TestClose(t *testing.T) {
	c := dialTestServer(t)
	require.NoError(t, c.Close())

	_, err := c.Generate(t.Context(), generator.Request{Kind: generator.KindUUID, Count: 1}, 1)
	assert.ErrorIs(t, err, ErrClosed)
}
