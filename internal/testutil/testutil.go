package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pricecheck/internal/fetcher"
	"pricecheck/internal/gbp"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	FetchFunc  func(ctx context.Context) (gbp.Price, error)
	SymbolFunc func() string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context) (gbp.Price, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return gbp.Price{}, nil
}

// Symbol implements the Fetcher interface
func (m *MockFetcher) Symbol() string {
	if m.SymbolFunc != nil {
		return m.SymbolFunc()
	}
	return "MOCK"
}

// NewMockFetcher creates a simple mock fetcher with predefined values
func NewMockFetcher(symbol string, price gbp.Price, err error) fetcher.Fetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context) (gbp.Price, error) {
			return price, err
		},
		SymbolFunc: func() string {
			return symbol
		},
	}
}

// ServePage starts an httptest server that answers every request with the
// given HTML body. The server is shut down when the test finishes.
func ServePage(t *testing.T, html string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}
