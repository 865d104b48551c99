package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind represents the category of error that occurred while fetching a
// holding's price.
type ErrorKind string

const (
	// KindTimeout indicates the page did not load within the fetch timeout.
	KindTimeout ErrorKind = "timeout"
	// KindNetwork indicates a network-level failure or a bad HTTP status.
	KindNetwork ErrorKind = "network"
	// KindExtraction indicates the page loaded but no price element was
	// found, or its text could not be parsed as a price.
	KindExtraction ErrorKind = "extraction"
	// KindUnsupported indicates no extractor exists for the holding's URL.
	KindUnsupported ErrorKind = "unsupported"
)

// FetchError is a structured per-holding error.
type FetchError struct {
	Kind    ErrorKind
	Symbol  string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s error: %s", e.Symbol, e.Kind, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(symbol string, cause error) *FetchError {
	return &FetchError{
		Kind:    KindTimeout,
		Symbol:  symbol,
		Message: "page did not load in time",
		Cause:   cause,
	}
}

// NewNetworkError creates a network error
func NewNetworkError(symbol string, cause error) *FetchError {
	return &FetchError{
		Kind:    KindNetwork,
		Symbol:  symbol,
		Message: "page request failed",
		Cause:   cause,
	}
}

// NewExtractionError creates an extraction error
func NewExtractionError(symbol, message string, cause error) *FetchError {
	return &FetchError{
		Kind:    KindExtraction,
		Symbol:  symbol,
		Message: message,
		Cause:   cause,
	}
}

// NewUnsupportedError creates an error for a URL no extractor handles
func NewUnsupportedError(symbol, host string) *FetchError {
	return &FetchError{
		Kind:    KindUnsupported,
		Symbol:  symbol,
		Message: fmt.Sprintf("no price extractor for host %q", host),
	}
}

// ClassifyLoadError turns a page-load failure into a timeout or network
// FetchError depending on the underlying cause.
func ClassifyLoadError(symbol string, err error) *FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(symbol, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError(symbol, err)
	}
	return NewNetworkError(symbol, err)
}
