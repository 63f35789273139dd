// Package ratecache keeps the latest exchange rate for every configured currency pair.
package ratecache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"currencyservice/internal/provider"
)

// Status tells a cold entry (no successful fetch yet) from a warm one.
type Status string

// Entry statuses.
const (
	StatusCold Status = "cold"
	StatusWarm Status = "warm"
)

// DefaultRefreshInterval is used when an entry is run with a non-positive interval.
const DefaultRefreshInterval = 60 * time.Second

// RefreshObserver receives the outcome of every refresh. err is nil on success.
type RefreshObserver interface {
	ObserveRefresh(key string, rate float64, took time.Duration, err error)
}

// Snapshot is a consistent copy of an entry's state.
type Snapshot struct {
	Pair      Pair
	Status    Status
	Value     float64
	UpdatedAt time.Time
	LastError string
}

// Entry owns the current rate of one pair.
//
// Only the entry's own refresh loop writes; the guard is held just long
// enough to copy values in or out, never across the fetch.
type Entry struct {
	pair         Pair
	fetcher      provider.RatesProvider
	fetchTimeout time.Duration
	observer     RefreshObserver
	log          *zap.SugaredLogger

	mu        sync.RWMutex
	status    Status
	value     float64
	updatedAt time.Time
	lastErr   string
}

func newEntry(pair Pair, fetcher provider.RatesProvider, o *options) *Entry {
	return &Entry{
		pair:         pair,
		fetcher:      fetcher,
		fetchTimeout: o.fetchTimeout,
		observer:     o.observer,
		log:          o.log.With("pair", pair.Key()),
		status:       StatusCold,
	}
}

// Pair returns the entry's currency pair.
func (e *Entry) Pair() Pair {
	return e.pair
}

// Read returns the latest committed rate, or ErrNotYetAvailable while cold.
func (e *Entry) Read() (float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.status != StatusWarm {
		return 0, ErrNotYetAvailable
	}
	return e.value, nil
}

// Snapshot returns a copy of the entry's state.
func (e *Entry) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Snapshot{
		Pair:      e.pair,
		Status:    e.status,
		Value:     e.value,
		UpdatedAt: e.updatedAt,
		LastError: e.lastErr,
	}
}

// Refresh fetches the pair once. On success the value is replaced and the
// entry becomes warm; on failure the previous state is kept and the error
// is returned for the caller's information only.
//
// A fetch cut short because ctx itself was cancelled is not recorded.
func (e *Entry) Refresh(ctx context.Context) error {
	fetchCtx := ctx
	if e.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, e.fetchTimeout)
		defer cancel()
	}

	start := time.Now()
	rate, err := e.fetcher.GetRate(fetchCtx, e.pair.Base, e.pair.Quote)
	took := time.Since(start)

	if err != nil && ctx.Err() != nil {
		return err
	}

	if err == nil && !provider.ValidRate(rate) {
		err = &provider.FetchError{Base: e.pair.Base, Quote: e.pair.Quote, Err: provider.ErrInvalidRate}
	}

	if e.observer != nil {
		e.observer.ObserveRefresh(e.pair.Key(), rate, took, err)
	}

	if err != nil {
		e.mu.Lock()
		e.lastErr = err.Error()
		e.mu.Unlock()

		e.log.Warnw("Rate refresh failed, keeping last known value", "error", err, "duration_ms", took.Milliseconds())
		return err
	}

	e.mu.Lock()
	e.value = rate
	e.status = StatusWarm
	e.updatedAt = time.Now().UTC()
	e.lastErr = ""
	e.mu.Unlock()

	e.log.Infow("Rate updated", "value", rate, "duration_ms", took.Milliseconds())
	return nil
}

// Run refreshes immediately and then every interval until ctx is cancelled.
// Ticks that fire while a refresh is still running are dropped.
func (e *Entry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		// select picks randomly when a tick and cancellation are both ready.
		if ctx.Err() != nil {
			return
		}
		_ = e.Refresh(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
