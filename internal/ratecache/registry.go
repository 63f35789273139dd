package ratecache

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"currencyservice/internal/provider"
)

// Option configures a Registry.
type Option func(*options)

type options struct {
	interval     time.Duration
	fetchTimeout time.Duration
	observer     RefreshObserver
	log          *zap.SugaredLogger
}

// WithRefreshInterval sets the period between refreshes of each entry.
func WithRefreshInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithFetchTimeout bounds every fetcher call.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *options) { o.fetchTimeout = d }
}

// WithObserver reports refresh outcomes, e.g. to metrics.
func WithObserver(obs RefreshObserver) Option {
	return func(o *options) { o.observer = obs }
}

// WithLogger sets the logger used by the registry and its entries.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) { o.log = log }
}

// Registry maps pair keys to their entries. The map is built once in
// NewRegistry and never written again, so lookups take no lock.
type Registry struct {
	entries  map[string]*Entry
	ordered  []*Entry
	interval time.Duration
	log      *zap.SugaredLogger
	started  atomic.Bool
}

// NewRegistry creates one cold entry per pair. An empty list, an invalid pair
// or a duplicated key is a ConfigError.
func NewRegistry(pairs []Pair, fetcher provider.RatesProvider, opts ...Option) (*Registry, error) {
	o := &options{
		interval: DefaultRefreshInterval,
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = zap.NewNop().Sugar()
	}

	if len(pairs) == 0 {
		return nil, &ConfigError{Reason: "no currency pairs configured"}
	}
	if fetcher == nil {
		return nil, fmt.Errorf("rate fetcher is required")
	}

	entries := make(map[string]*Entry, len(pairs))
	ordered := make([]*Entry, 0, len(pairs))
	for _, p := range pairs {
		if !p.Valid() {
			return nil, &ConfigError{Reason: fmt.Sprintf("invalid pair %q", p.String())}
		}
		key := p.Key()
		if _, dup := entries[key]; dup {
			return nil, &ConfigError{Reason: fmt.Sprintf("duplicate pair %s", key)}
		}
		e := newEntry(p, fetcher, o)
		entries[key] = e
		ordered = append(ordered, e)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].pair.Key() < ordered[j].pair.Key() })

	return &Registry{
		entries:  entries,
		ordered:  ordered,
		interval: o.interval,
		log:      o.log,
	}, nil
}

// Lookup returns the entry for key or ErrPairNotFound.
func (r *Registry) Lookup(key string) (*Entry, error) {
	e, ok := r.entries[key]
	if !ok {
		return nil, ErrPairNotFound
	}
	return e, nil
}

// Entries returns all entries ordered by key.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of configured pairs.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Started reports whether the refresh loops are running.
func (r *Registry) Started() bool {
	return r.started.Load()
}

// Run starts every entry's refresh loop and blocks until ctx is cancelled.
func (r *Registry) Run(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return fmt.Errorf("registry already running")
	}
	defer r.started.Store(false)

	r.log.Infow("Starting rate refresh loops", "pairs", len(r.entries), "interval", r.interval.String())

	g, ctx := errgroup.WithContext(ctx)
	for _, e := range r.ordered {
		g.Go(func() error {
			e.Run(ctx, r.interval)
			return nil
		})
	}
	err := g.Wait()

	r.log.Infow("Rate refresh loops stopped")
	return err
}
