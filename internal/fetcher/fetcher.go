package fetcher

import (
	"context"

	"pricecheck/internal/gbp"
)

// Fetcher is the core interface implemented by every price source.
// Each fetcher knows how to retrieve the current GBP price for exactly
// one holding.
type Fetcher interface {
	// Fetch retrieves the current price of the holding. Returns an error
	// (normally a *FetchError) if the page cannot be loaded or no price
	// can be extracted from it.
	Fetch(ctx context.Context) (gbp.Price, error)

	// Symbol returns the holding symbol this fetcher reports for.
	Symbol() string
}
