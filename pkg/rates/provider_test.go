package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/latest", r.URL.Path)
			require.Equal(t, "USD", r.URL.Query().Get("base"))
			require.Equal(t, "EUR,GBP", r.URL.Query().Get("symbols"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"base":"USD","rates":{"EUR":"0.92","GBP":"0.79"}}`))
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL)
		rates, err := provider.Fetch(context.Background(), "USD", []string{"EUR", "GBP"})
		require.NoError(t, err)
		require.Len(t, rates, 2)
		require.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.92")))
		require.True(t, rates["GBP"].Equal(decimal.RequireFromString("0.79")))
	})

	t.Run("MissingTarget", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"base":"USD","rates":{"EUR":"0.92"}}`))
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL)
		_, err := provider.Fetch(context.Background(), "USD", []string{"EUR", "GBP"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "USD/GBP")
	})

	t.Run("UpstreamError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL)
		_, err := provider.Fetch(context.Background(), "USD", []string{"EUR"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "status 502")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		provider := NewHTTPProvider(server.URL)
		_, err := provider.Fetch(context.Background(), "USD", []string{"EUR"})
		require.Error(t, err)
	})
}
