package holdings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeHoldings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdings.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing holdings file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeHoldings(t, "symbol,url\n"+
		"VOD,https://www.londonstockexchange.com/stock/VOD/vodafone\n"+
		"FUND,https://markets.iweb-sharedealing.co.uk/fund/GB000\n"+
		"BP,https://www.londonstockexchange.com/stock/BP/bp\n")

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if len(list) != 3 {
		t.Fatalf("Load() returned %d holdings, want 3", len(list))
	}

	// Input order must be preserved
	wantSymbols := []string{"VOD", "FUND", "BP"}
	for i, want := range wantSymbols {
		if list[i].Symbol != want {
			t.Errorf("holding %d symbol = %q, want %q", i, list[i].Symbol, want)
		}
	}
	if list[0].URL != "https://www.londonstockexchange.com/stock/VOD/vodafone" {
		t.Errorf("holding 0 url = %q", list[0].URL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load() error type = %T, want *LoadError", err)
	}
	if loadErr.Kind != KindMissingResource {
		t.Errorf("Load() error kind = %q, want %q", loadErr.Kind, KindMissingResource)
	}
}

func TestLoad_MalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"wrong header", "ticker,link\nVOD,https://example.com\n"},
		{"missing url column", "symbol\nVOD\n"},
		{"empty file", ""},
		{"empty symbol", "symbol,url\n,https://www.londonstockexchange.com/stock/VOD\n"},
		{"blank symbol", "symbol,url\n  ,https://www.londonstockexchange.com/stock/VOD\n"},
		{"invalid url", "symbol,url\nVOD,not-a-url\n"},
		{"url without scheme", "symbol,url\nVOD,www.londonstockexchange.com/stock/VOD\n"},
		{"ftp scheme", "symbol,url\nVOD,ftp://example.com/prices\n"},
		{"duplicate symbol", "symbol,url\n" +
			"VOD,https://www.londonstockexchange.com/a\n" +
			"VOD,https://www.londonstockexchange.com/b\n"},
		{"row with extra field", "symbol,url\nVOD,https://example.com,extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeHoldings(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Load() error type = %T, want *LoadError", err)
			}
			if loadErr.Kind != KindMalformedInput {
				t.Errorf("Load() error kind = %q, want %q", loadErr.Kind, KindMalformedInput)
			}
		})
	}
}

func TestLoad_EmptyHoldingsList(t *testing.T) {
	path := writeHoldings(t, "symbol,url\n")

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Load() returned %d holdings, want 0", len(list))
	}
}
