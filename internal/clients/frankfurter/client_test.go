package frankfurter_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	"github.com/cambiolabs/cotacao-api/internal/clients/frankfurter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchLatest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "BRL", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2024-01-01","rates":{"BRL":5.0}}`))
	}))
	defer server.Close()

	client := frankfurter.NewClient(server.URL, discardLogger())

	quote, err := client.FetchLatest(context.Background(), "USD", "BRL")

	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, 1.0, quote.Amount)
	assert.Equal(t, "USD", quote.Base)
	assert.Equal(t, "2024-01-01", quote.Date)
	assert.Equal(t, 5.0, quote.Rates["BRL"])
}

func TestFetchLatest_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer server.Close()

	client := frankfurter.NewClient(server.URL, discardLogger())

	quote, err := client.FetchLatest(context.Background(), "USD", "BRL")

	require.Error(t, err)
	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestFetchLatest_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := frankfurter.NewClient(server.URL, discardLogger())

	quote, err := client.FetchLatest(context.Background(), "USD", "BRL")

	require.Error(t, err)
	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestFetchLatest_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := frankfurter.NewClient(server.URL, discardLogger())

	quote, err := client.FetchLatest(context.Background(), "USD", "BRL")

	require.Error(t, err)
	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}
