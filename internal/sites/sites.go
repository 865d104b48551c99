// Package sites maps a holding's source URL to the extractor that
// understands the page behind it.
package sites

import (
	"net/url"
	"strings"

	"pricecheck/internal/fetcher"
	"pricecheck/internal/holdings"
	"pricecheck/internal/iweb"
	"pricecheck/internal/lse"
	"pricecheck/internal/renderer"
)

const (
	lseHost  = "londonstockexchange.com"
	iwebHost = "markets.iweb-sharedealing.co.uk"
)

// ForHolding returns the fetcher for the holding's source site. URLs on a
// host no extractor understands are rejected up front, before any page is
// loaded.
func ForHolding(h holdings.Holding, r renderer.Renderer) (fetcher.Fetcher, error) {
	parsed, err := url.Parse(h.URL)
	if err != nil {
		return nil, fetcher.NewUnsupportedError(h.Symbol, h.URL)
	}
	host := strings.ToLower(parsed.Hostname())

	switch {
	case host == lseHost || strings.HasSuffix(host, "."+lseHost):
		return lse.New(h.Symbol, h.URL, r), nil
	case host == iwebHost:
		return iweb.New(h.Symbol, h.URL, r), nil
	default:
		return nil, fetcher.NewUnsupportedError(h.Symbol, host)
	}
}
