// Package iweb extracts instrument prices from iWeb share-dealing market
// pages. The price sits in the element following the "Price" description
// label and is always quoted in pence.
package iweb

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"pricecheck/internal/fetcher"
	"pricecheck/internal/gbp"
	"pricecheck/internal/renderer"
)

const labelSelector = "p.description__label"

// PriceFetcher fetches one holding's price from its iWeb market page.
type PriceFetcher struct {
	symbol   string
	pageURL  string
	renderer renderer.Renderer
}

// New creates a fetcher for the holding's iWeb page.
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

	text, found := priceText(page)
	if !found {
		return gbp.Price{}, fetcher.NewExtractionError(f.symbol, "price element not found", nil)
	}

	price, err := gbp.FromString(text, "GBX")
	if err != nil {
		return gbp.Price{}, fetcher.NewExtractionError(f.symbol, "cannot parse price", err)
	}
	return price, nil
}

// Symbol returns the holding symbol this fetcher reports for.
func (f *PriceFetcher) Symbol() string {
	return f.symbol
}

// priceText finds the description label containing "Price" and returns the
// text of its following sibling.
func priceText(page *renderer.Page) (string, bool) {
	var text string
	var found bool
	page.Each(labelSelector, func(_ int, s *goquery.Selection) {
		if found || !strings.Contains(s.Text(), "Price") {
			return
		}
		sibling := s.Next()
		if sibling.Length() == 0 {
			return
		}
		text = strings.TrimSpace(sibling.Text())
		found = true
	})
	return text, found
}
