package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, NewTokenStore(filepath.Join(t.TempDir(), "token")))
}

func TestDoAttachesBearerToken(t *testing.T) {
	var auth string
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, api.do(context.Background(), http.MethodGet, "/api/services", nil, nil))
	assert.Equal(t, "", auth)

	require.NoError(t, api.Tokens().SetToken("tok-abc"))
	require.NoError(t, api.do(context.Background(), http.MethodGet, "/api/services", nil, nil))
	assert.Equal(t, "Bearer tok-abc", auth)
}

func TestDoRequestError(t *testing.T) {
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Service not found"}`))
	}))

	err := api.do(context.Background(), http.MethodGet, "/api/services/nope", nil, nil)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.Status)
	assert.Equal(t, "Service not found", reqErr.Message)
	assert.Contains(t, reqErr.Error(), "Service not found")
}

func TestDoErrorBodyVariants(t *testing.T) {
	assert.Equal(t, "boom", serverMessage([]byte(`{"message":"boom"}`)))
	assert.Equal(t, "bad", serverMessage([]byte(`{"error":"bad"}`)))
	assert.Equal(t, "", serverMessage([]byte(`not json`)))
	assert.Equal(t, "", serverMessage([]byte(`{}`)))
}

func TestDoContextCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Write([]byte(`[{"id":"s1"}]`))
	}))
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	var out []Service
	go func() {
		done <- api.do(ctx, http.MethodGet, "/api/services", nil, &out)
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		// the late response never lands in out
		assert.Nil(t, out)
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled request did not return")
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	api := New("http://localhost:8080/", nil)
	assert.Equal(t, "http://localhost:8080", api.baseURL)
}
