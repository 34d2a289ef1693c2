package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Settings(t *testing.T) {
	c := NewHTTPClient("http://localhost:8080", 5*time.Second)

	require.NotNil(t, c.Client)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, userAgent, c.Header.Get("User-Agent"))
	assert.Equal(t, retryCount, c.RetryCount)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	c1 := NewHTTPClient("http://a", 0)
	c2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, c1.Client, c2.Client)
}

func TestHTTPClient_RetriesUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPClient_NoRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/")

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, int32(1), calls.Load())
}
