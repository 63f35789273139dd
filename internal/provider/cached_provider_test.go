package provider

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCachedRatesProvider_GetRate(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	base := "USD"
	quote := "RUB"
	rate := 75.5
	ttl := 10 * time.Second

	t.Run("cache miss then hit", func(t *testing.T) {
		mr.FlushAll()
		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, base, quote).Return(rate, nil).Once()

		cachedProv := NewCachedRatesProvider(mockProv, rdb, ttl, "test_provider")

		// First call - cache miss
		got, err := cachedProv.GetRate(context.Background(), base, quote)
		assert.NoError(t, err)
		assert.Equal(t, rate, got)
		mockProv.AssertExpectations(t)

		// Second call - cache hit (MockProvider should NOT be called again because of .Once())
		got2, err := cachedProv.GetRate(context.Background(), base, quote)
		assert.NoError(t, err)
		assert.Equal(t, rate, got2)
	})

	t.Run("provider error is not cached", func(t *testing.T) {
		mr.FlushAll()
		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, base, quote).Return(0.0, assert.AnError).Once()

		cachedProv := NewCachedRatesProvider(mockProv, rdb, ttl, "test_provider")

		_, err := cachedProv.GetRate(context.Background(), base, quote)
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, mr.Exists("provider_cache:test_provider:{USD:RUB}"))

		// Second call - provider should be called again
		mockProv.On("GetRate", mock.Anything, base, quote).Return(rate, nil).Once()
		got, err := cachedProv.GetRate(context.Background(), base, quote)
		assert.NoError(t, err)
		assert.Equal(t, rate, got)
		mockProv.AssertExpectations(t)
	})

	t.Run("cache expires", func(t *testing.T) {
		mr.FlushAll()
		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, base, quote).Return(rate, nil).Once()

		cachedProv := NewCachedRatesProvider(mockProv, rdb, ttl, "test_provider")

		_, _ = cachedProv.GetRate(context.Background(), base, quote)

		mr.FastForward(ttl + time.Second)

		// Second call - cache expired, should call provider again
		mockProv.On("GetRate", mock.Anything, base, quote).Return(80.0, nil).Once()
		got, err := cachedProv.GetRate(context.Background(), base, quote)
		assert.NoError(t, err)
		assert.Equal(t, 80.0, got)
		mockProv.AssertExpectations(t)
	})

	t.Run("unreadable cache entry falls through to provider", func(t *testing.T) {
		mr.FlushAll()
		assert.NoError(t, mr.Set("provider_cache:test_provider:{USD:RUB}", "garbage"))

		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, base, quote).Return(rate, nil).Once()

		cachedProv := NewCachedRatesProvider(mockProv, rdb, ttl, "test_provider")
		got, err := cachedProv.GetRate(context.Background(), base, quote)
		assert.NoError(t, err)
		assert.Equal(t, rate, got)
		mockProv.AssertExpectations(t)
	})

	for _, cached := range []string{"+Inf", "-Inf", "NaN", "0", "-3"} {
		t.Run("invalid cached rate "+cached+" falls through to provider", func(t *testing.T) {
			mr.FlushAll()
			assert.NoError(t, mr.Set("provider_cache:test_provider:{USD:RUB}", cached))

			mockProv := new(MockProvider)
			mockProv.On("GetRate", mock.Anything, base, quote).Return(rate, nil).Once()

			cachedProv := NewCachedRatesProvider(mockProv, rdb, ttl, "test_provider")
			got, err := cachedProv.GetRate(context.Background(), base, quote)
			assert.NoError(t, err)
			assert.Equal(t, rate, got)
			mockProv.AssertExpectations(t)
		})
	}

	t.Run("nil cache passes through", func(t *testing.T) {
		mockProv := new(MockProvider)
		mockProv.On("GetRate", mock.Anything, base, quote).Return(rate, nil).Twice()

		cachedProv := NewCachedRatesProvider(mockProv, nil, ttl, "test_provider")
		_, _ = cachedProv.GetRate(context.Background(), base, quote)
		_, _ = cachedProv.GetRate(context.Background(), base, quote)
		mockProv.AssertExpectations(t)
	})
}
