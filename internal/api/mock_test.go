package api

import (
	"context"

	"currencyservice/internal/service"
)

// mockCurrencyService implements service.CurrencyServiceInterface for testing.
type mockCurrencyService struct {
	getCurrentValueFunc func(ctx context.Context, pairKey string) (float64, error)
	listPairsFunc       func(ctx context.Context) ([]*service.CurrencyResult, error)
}

func (m *mockCurrencyService) GetCurrentValue(ctx context.Context, pairKey string) (float64, error) {
	return m.getCurrentValueFunc(ctx, pairKey)
}

func (m *mockCurrencyService) ListPairs(ctx context.Context) ([]*service.CurrencyResult, error) {
	return m.listPairsFunc(ctx)
}
