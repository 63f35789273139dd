// Package provider implements the remote rate source used to refresh cached currency pairs.
package provider

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// RatesProvider defines an interface for fetching exchange rates from external sources.
type RatesProvider interface {
	GetRate(ctx context.Context, base, quote string) (float64, error)
}

// ErrQuoteMissing indicates the rate source answered but did not include the requested quote.
var ErrQuoteMissing = errors.New("quote missing from response")

// ErrInvalidRate indicates the rate source returned a zero, negative or non-finite rate.
var ErrInvalidRate = errors.New("invalid rate")

// ValidRate reports whether rate is positive and finite.
func ValidRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0)
}

// FetchError describes a failed fetch for a single pair. It is always recoverable:
// the caller keeps its last known value and tries again on the next refresh.
type FetchError struct {
	Base  string
	Quote string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s->%s: %v", e.Base, e.Quote, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func fetchErr(base, quote string, err error) *FetchError {
	return &FetchError{Base: base, Quote: quote, Err: err}
}
