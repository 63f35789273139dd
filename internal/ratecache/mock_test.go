package ratecache

import (
	"context"
	"errors"
	"sync"
	"time"
)

var errNetwork = errors.New("connection refused")

// scriptedFetcher returns queued results in order and repeats the last one.
type scriptedFetcher struct {
	mu      sync.Mutex
	results []fetchResult
	calls   int
	gate    chan struct{} // when set, every call waits for a receive from gate
	started chan struct{} // when set, every call signals before waiting
}

type fetchResult struct {
	rate float64
	err  error
}

func newScriptedFetcher(results ...fetchResult) *scriptedFetcher {
	return &scriptedFetcher{results: results}
}

func (f *scriptedFetcher) GetRate(ctx context.Context, _, _ string) (float64, error) {
	f.mu.Lock()
	idx := f.calls
	f.calls++
	gate, started := f.gate, f.started
	var res fetchResult
	if len(f.results) > 0 {
		if idx >= len(f.results) {
			idx = len(f.results) - 1
		}
		res = f.results[idx]
	}
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	return res.rate, res.err
}

func (f *scriptedFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type observed struct {
	key  string
	rate float64
	err  error
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observed
}

func (o *recordingObserver) ObserveRefresh(key string, rate float64, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observed{key: key, rate: rate, err: err})
}

func (o *recordingObserver) all() []observed {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]observed(nil), o.seen...)
}
