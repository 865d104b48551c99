package renderer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pricecheck/internal/testutil"
)

func TestLoad_ExtractsElements(t *testing.T) {
	server := testutil.ServePage(t, `<html><body>
		<div class="quote"><span class="price-tag">123.45</span></div>
		<div class="currency-label">Price quoted in (GBP)</div>
	</body></html>`)

	r := NewHTTP(5*time.Second, "test-agent")
	defer r.Close()

	page, err := r.Load(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	price, err := page.First("span.price-tag")
	if err != nil {
		t.Fatalf("First() returned unexpected error: %v", err)
	}
	if price != "123.45" {
		t.Errorf("First(price-tag) = %q, want %q", price, "123.45")
	}

	if page.URL() != server.URL {
		t.Errorf("URL() = %q, want %q", page.URL(), server.URL)
	}
}

func TestLoad_SendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	r := NewHTTP(5*time.Second, "pricecheck-test/1.0")
	defer r.Close()

	if _, err := r.Load(context.Background(), server.URL); err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if gotAgent != "pricecheck-test/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotAgent, "pricecheck-test/1.0")
	}
}

func TestFirst_NoMatch(t *testing.T) {
	server := testutil.ServePage(t, `<html><body><p>nothing here</p></body></html>`)

	r := NewHTTP(5*time.Second, "test-agent")
	defer r.Close()

	page, err := r.Load(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if _, err := page.First("span.price-tag"); err == nil {
		t.Error("First() expected error for missing element, got nil")
	}
}

func TestLoad_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	r := NewHTTP(5*time.Second, "test-agent")
	defer r.Close()

	if _, err := r.Load(context.Background(), server.URL); err == nil {
		t.Error("Load() expected error for 404 response, got nil")
	}
}

func TestLoad_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	r := NewHTTP(5*time.Second, "test-agent")
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := r.Load(ctx, server.URL); err == nil {
		t.Error("Load() expected error for timed-out page, got nil")
	}
}

func TestLoad_InvalidURL(t *testing.T) {
	r := NewHTTP(5*time.Second, "test-agent")
	defer r.Close()

	if _, err := r.Load(context.Background(), "://not-a-url"); err == nil {
		t.Error("Load() expected error for invalid URL, got nil")
	}
}
