// Package lse extracts instrument prices from London Stock Exchange quote
// pages. LSE quotes equities in pence (GBX) and funds in pounds, so the
// currency label next to the price decides the conversion.
package lse

import (
	"context"
	"strings"

	"pricecheck/internal/fetcher"
	"pricecheck/internal/gbp"
	"pricecheck/internal/renderer"
)

const (
	currencySelector = "div.currency-label"
	priceSelector    = "span.price-tag"
)

// PriceFetcher fetches one holding's price from its LSE quote page.
type PriceFetcher struct {
	symbol   string
	pageURL  string
	renderer renderer.Renderer
}

// New creates a fetcher for the holding's LSE page.
func New(symbol, pageURL string, r renderer.Renderer) *PriceFetcher {
	return &PriceFetcher{
		symbol:   symbol,
		pageURL:  pageURL,
		renderer: r,
	}
}

// Fetch retrieves the current price in GBP.
func (f *PriceFetcher) Fetch(ctx context.Context) (gbp.Price, error) {
	page, err := f.renderer.Load(ctx, f.pageURL)
	if err != nil {
		return gbp.Price{}, fetcher.ClassifyLoadError(f.symbol, err)
	}

	label, err := page.First(currencySelector)
	if err != nil {
		return gbp.Price{}, fetcher.NewExtractionError(f.symbol, "currency label not found", err)
	}
	currency := parseCurrency(label)

	text, err := page.First(priceSelector)
	if err != nil {
		return gbp.Price{}, fetcher.NewExtractionError(f.symbol, "price element not found", err)
	}

	price, err := gbp.FromString(text, currency)
	if err != nil {
		return gbp.Price{}, fetcher.NewExtractionError(f.symbol, "cannot parse price", err)
	}
	return price, nil
}

// Symbol returns the holding symbol this fetcher reports for.
func (f *PriceFetcher) Symbol() string {
	return f.symbol
}

// parseCurrency pulls the currency code out of a label like
// "Price quoted in (GBX)". Falls back to the trimmed label text so an
// unexpected format still fails loudly at conversion time.
func parseCurrency(label string) string {
	open := strings.LastIndex(label, "(")
	if open < 0 {
		return strings.TrimSpace(label)
	}
	code := label[open+1:]
	if end := strings.Index(code, ")"); end >= 0 {
		code = code[:end]
	}
	return strings.TrimSpace(code)
}
