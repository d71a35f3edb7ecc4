package giphy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sprint-accomplishments/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()

	c := New(zap.NewNop().Sugar(), config.GiphyConfig{
		APIKey:      "test-key",
		Endpoint:    endpoint,
		SearchTerm:  "congratulations",
		Rating:      "g",
		OffsetRange: 5000,
		Timeout:     time.Second,
	})
	c.randIntn = func(int) int { return 1234 }
	return c
}

func TestRandomCongratulatoryGif(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "test-key", q.Get("api_key"))
		require.Equal(t, "congratulations", q.Get("q"))
		require.Equal(t, "1", q.Get("limit"))
		require.Equal(t, "g", q.Get("rating"))
		require.Equal(t, "1234", q.Get("offset"))

		_, _ = w.Write([]byte(`{"data":[{"images":{"original":{"url":"https://media.test/congrats.gif"}}}]}`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	gifURL, err := c.RandomCongratulatoryGif(context.Background())
	require.NoError(t, err)
	require.Equal(t, "https://media.test/congrats.gif", gifURL)
}

func TestRandomCongratulatoryGifNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	gifURL, err := c.RandomCongratulatoryGif(context.Background())
	require.NoError(t, err)
	require.Empty(t, gifURL)
}

func TestRandomCongratulatoryGifProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	gifURL, err := c.RandomCongratulatoryGif(context.Background())
	require.NoError(t, err)
	require.Empty(t, gifURL)
}

func TestRandomCongratulatoryGifUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := newTestClient(t, srv.URL)
	gifURL, err := c.RandomCongratulatoryGif(context.Background())
	require.NoError(t, err)
	require.Empty(t, gifURL)
}
