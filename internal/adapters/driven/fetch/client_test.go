package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("hello"))
		}))
		defer srv.Close()

		status, body, err := NewClient("gitscout-test").Fetch(ctx, srv.URL, 5*time.Second)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "hello", string(body))
	})

	t.Run("non-2xx status is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		status, _, err := NewClient("gitscout-test").Fetch(ctx, srv.URL, 5*time.Second)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		_, _, err := NewClient("gitscout/0.1").Fetch(ctx, srv.URL, 5*time.Second)

		require.NoError(t, err)
		assert.Equal(t, "gitscout/0.1", gotUA)
	})

	t.Run("multi-megabyte body is returned intact", func(t *testing.T) {
		large := strings.Repeat("a", 2<<20)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(large))
		}))
		defer srv.Close()

		status, body, err := NewClient("gitscout-test").Fetch(ctx, srv.URL, 30*time.Second)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, body, len(large))
	})

	t.Run("timeout aborts a slow response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		_, _, err := NewClient("gitscout-test").Fetch(ctx, srv.URL, 10*time.Millisecond)

		assert.Error(t, err)
	})

	t.Run("transport failure returns an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		srv.Close() // refuse connections

		_, _, err := NewClient("gitscout-test").Fetch(ctx, srv.URL, time.Second)

		assert.Error(t, err)
	})
}
