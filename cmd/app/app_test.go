package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"currencyservice/internal/config"
)

func testConfig(fetcherURL string) *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8888, ServeMetrics: true, ServeSwagger: true},
		Pairs:   config.PairsConfig{List: []string{"USD->RUB"}},
		Refresh: config.RefreshConfig{IntervalSec: 3600},
		Fetcher: config.FetcherConfig{BaseURL: fetcherURL, TimeoutSec: 2},
		Cache:   config.CacheConfig{FetchTTLSec: 30},
	}
}

func serve(t *testing.T, h http.Handler, target string) (int, string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w.Code, w.Body.String()
}

func TestApp_CurrencyScenario(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"base":"USD","date":"2020-05-04","rates":{"RUB":75.5}}`))
	}))
	defer upstream.Close()

	app, err := NewApp(testConfig(upstream.URL), zap.NewNop().Sugar())
	require.NoError(t, err)
	h := app.httpServer.Handler

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = app.registry.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	_, body := serve(t, h, "/get_currency?pair=USD_RUB")
	assert.JSONEq(t, `{"status":"not_yet_available"}`, body)

	close(release)
	require.Eventually(t, func() bool {
		_, body := serve(t, h, "/get_currency?pair=USD_RUB")
		return strings.Contains(body, `"ok"`)
	}, time.Second, 5*time.Millisecond)

	_, body = serve(t, h, "/get_currency?pair=USD_RUB")
	assert.JSONEq(t, `{"status":"ok","current_value":75.5}`, body)

	_, body = serve(t, h, "/get_currency?pair=EUR_JPY")
	assert.JSONEq(t, `{"status":"pair_not_found"}`, body)

	_, body = serve(t, h, "/get_currency")
	assert.JSONEq(t, `{"status":"pair_not_provided"}`, body)

	code, _ := serve(t, h, "/readyz")
	assert.Equal(t, http.StatusOK, code)

	code, body = serve(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `rate_refresh_total{pair="USD_RUB",result="success"} 1`)

	code, body = serve(t, h, "/pairs")
	assert.Equal(t, http.StatusOK, code)
	var pairs struct {
		Pairs []struct {
			Pair   string `json:"pair"`
			Status string `json:"status"`
		} `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &pairs))
	require.Len(t, pairs.Pairs, 1)
	assert.Equal(t, "warm", pairs.Pairs[0].Status)
}

func TestApp_ReadyzBeforeRefreshLoops(t *testing.T) {
	app, err := NewApp(testConfig("http://127.0.0.1:1"), zap.NewNop().Sugar())
	require.NoError(t, err)

	code, _ := serve(t, app.httpServer.Handler, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestApp_WithRedisFetchCache(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("provider_cache:exchangeratesapi:{USD:RUB}", "70.25"))

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Redis.CacheAddr = mr.Addr()

	app, err := NewApp(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer func() { _ = app.close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = app.registry.Run(ctx) }()

	require.Eventually(t, func() bool {
		_, body := serve(t, app.httpServer.Handler, "/get_currency?pair=USD_RUB")
		return strings.Contains(body, `"current_value":70.25`)
	}, time.Second, 5*time.Millisecond)
}

func TestNewApp_FailsWithoutPairs(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Pairs = config.PairsConfig{List: []string{"# nothing here"}}

	_, err := NewApp(cfg, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no currency pairs configured")
}

func TestNewApp_FailsWhenRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Redis.CacheAddr = addr

	_, err := NewApp(cfg, zap.NewNop().Sugar())
	assert.Error(t, err)
}
