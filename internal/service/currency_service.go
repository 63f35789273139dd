// Package service implements the query side of the currency rate cache.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"currencyservice/internal/ratecache"
)

// CurrencyServiceInterface defines the operations available to the HTTP layer.
type CurrencyServiceInterface interface {
	GetCurrentValue(ctx context.Context, pairKey string) (float64, error)
	ListPairs(ctx context.Context) ([]*CurrencyResult, error)
}

// PairRegistry is the part of ratecache.Registry the service depends on.
type PairRegistry interface {
	Lookup(key string) (*ratecache.Entry, error)
	Entries() []*ratecache.Entry
}

var _ PairRegistry = (*ratecache.Registry)(nil)

// CurrencyService answers point queries against the pair registry.
type CurrencyService struct {
	registry PairRegistry
	log      *zap.SugaredLogger
}

// NewCurrencyService creates a new CurrencyService
func NewCurrencyService(registry PairRegistry, logger *zap.SugaredLogger) *CurrencyService {
	return &CurrencyService{
		registry: registry,
		log:      logger,
	}
}

// GetCurrentValue returns the latest known rate for the pair key (e.g. "USD_RUB").
func (s *CurrencyService) GetCurrentValue(ctx context.Context, pairKey string) (float64, error) {
	pairKey = strings.TrimSpace(pairKey)
	if pairKey == "" {
		return 0, ErrPairNotProvided
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if s.registry == nil {
		s.log.Errorw("Currency query without registry", "pair", pairKey)
		return 0, fmt.Errorf("%w: registry is not initialized", ErrInternal)
	}

	entry, err := s.registry.Lookup(pairKey)
	if err != nil {
		if errors.Is(err, ratecache.ErrPairNotFound) {
			return 0, ErrPairNotFound
		}
		s.log.Errorw("Registry lookup failed", "pair", pairKey, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	v, err := entry.Read()
	if err != nil {
		if errors.Is(err, ratecache.ErrNotYetAvailable) {
			return 0, ErrNotYetAvailable
		}
		s.log.Errorw("Entry read failed", "pair", pairKey, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return v, nil
}

// ListPairs returns every configured pair ordered by key.
func (s *CurrencyService) ListPairs(ctx context.Context) ([]*CurrencyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if s.registry == nil {
		return nil, fmt.Errorf("%w: registry is not initialized", ErrInternal)
	}

	entries := s.registry.Entries()
	out := make([]*CurrencyResult, 0, len(entries))
	for _, e := range entries {
		out = append(out, currencyResultFromSnapshot(e.Snapshot()))
	}
	return out, nil
}
