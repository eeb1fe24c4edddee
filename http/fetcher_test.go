package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	salesite "github.com/wellspentstyle/SaleSite-sub000"
	salehttp "github.com/wellspentstyle/SaleSite-sub000/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := salehttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends a browser-like user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := salehttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla")
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := salehttp.NewFetcher(salehttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := salehttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("connection failure is retryable", func(t *testing.T) {
		t.Parallel()

		fetcher := salehttp.NewFetcher(salehttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, salesite.ERETRYABLE, salesite.ErrorCode(err))
	})
}

func TestFetcher_StatusClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		wantKind string
	}{
		{"403 implicates the domain", http.StatusForbidden, salesite.EBLOCKED},
		{"401 implicates the domain", http.StatusUnauthorized, salesite.EBLOCKED},
		{"429 implicates the domain", http.StatusTooManyRequests, salesite.EBLOCKED},
		{"500 is transient", http.StatusInternalServerError, salesite.ERETRYABLE},
		{"503 is transient", http.StatusServiceUnavailable, salesite.ERETRYABLE},
		{"408 is transient", http.StatusRequestTimeout, salesite.ERETRYABLE},
		{"404 is fatal for the URL only", http.StatusNotFound, salesite.EFATAL},
		{"410 is fatal for the URL only", http.StatusGone, salesite.EFATAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			fetcher := salehttp.NewFetcher()
			defer fetcher.Close()

			_, err := fetcher.Fetch(context.Background(), server.URL)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, salesite.ErrorCode(err))
		})
	}
}

// Compile-time verification that Fetcher implements salesite.Fetcher.
var _ salesite.Fetcher = (*salehttp.Fetcher)(nil)
