//go:build integration

// Package integration holds tests that run against real infrastructure started by testkit.
package integration

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

var testRDB *redis.Client

// resetTestData flushes the current Redis database.
func resetTestData(t *testing.T) {
	t.Helper()

	if err := testRDB.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
}

// testContext returns a context with a 30-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// countingFetcher returns a fixed rate and counts upstream calls.
type countingFetcher struct {
	rate  float64
	err   error
	calls atomic.Int32
}

func (f *countingFetcher) GetRate(_ context.Context, _, _ string) (float64, error) {
	f.calls.Add(1)
	return f.rate, f.err
}
