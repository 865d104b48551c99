package fetcher

import "pricecheck/internal/gbp"

// Result represents the outcome of fetching one holding's price.
// Results are sent through a channel from worker goroutines to the
// coordinator, which restores input order before reporting.
type Result struct {
	// Index is the holding's position in the input file, used to keep the
	// output deterministic regardless of fetch completion order.
	Index int

	// Symbol is the holding symbol the price belongs to.
	Symbol string

	// Price is the fetched GBP price. Only valid when Err is nil.
	Price gbp.Price

	// Err records why the fetch failed, if it did.
	Err error
}
