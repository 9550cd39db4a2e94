// Package requestqueue serializes calls to the external model backend.
// One processing loop dispatches requests in submission order with a
// minimum gap between dispatches, retries a failing head in place with
// exponential backoff, and caches successful results under caller keys.
//
// The queue is an explicit service instance: construct it once and pass
// it by reference. There is no cancellation primitive — once enqueued, a
// request runs to success or exhausted retries, and a failing or hung
// head blocks everything behind it.
package requestqueue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"daybalance/pkg/log"
)

// Defaults.
const (
	DefaultDispatchGap = 2 * time.Second
	DefaultMaxRetries  = 3
	DefaultCacheTTL    = 5 * time.Minute
	defaultCacheSize   = 128
)

// Work is one invocable unit submitted to the backend.
type Work func(ctx context.Context) (string, error)

// Result is the terminal outcome of a queued request.
type Result struct {
	Value string
	Err   error
}

type request struct {
	id       string
	ctx      context.Context
	cacheKey string
	work     Work
	retries  int
	done     chan Result
}

// Queue is the serializing dispatcher. Only the processing loop mutates
// queue contents, and only while it holds the processing flag.
type Queue struct {
	l log.Logger

	mu           sync.Mutex
	items        []*request
	processing   bool
	lastDispatch time.Time

	cache      *expirable.LRU[string, string]
	clock      Clock
	gap        time.Duration
	maxRetries int
}

// Option configures a Queue.
type Option func(*Queue)

// WithClock injects a clock, used by tests for deterministic pacing.
func WithClock(c Clock) Option {
	return func(q *Queue) { q.clock = c }
}

// WithDispatchGap overrides the minimum time between dispatches.
func WithDispatchGap(d time.Duration) Option {
	return func(q *Queue) { q.gap = d }
}

// WithMaxRetries overrides the attempt cap per request.
func WithMaxRetries(n int) Option {
	return func(q *Queue) { q.maxRetries = n }
}

// WithCacheTTL overrides the response cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(q *Queue) {
		q.cache = expirable.NewLRU[string, string](defaultCacheSize, nil, ttl)
	}
}

// New creates a Queue.
func New(l log.Logger, opts ...Option) *Queue {
	q := &Queue{
		l:          l,
		clock:      realClock{},
		gap:        DefaultDispatchGap,
		maxRetries: DefaultMaxRetries,
		cache:      expirable.NewLRU[string, string](defaultCacheSize, nil, DefaultCacheTTL),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue submits work and returns a channel that receives exactly one
// terminal Result. A fresh cache entry under cacheKey short-circuits
// synchronously without touching the queue; an empty key is never cached.
func (q *Queue) Enqueue(ctx context.Context, cacheKey string, work Work) <-chan Result {
	done := make(chan Result, 1)

	if cacheKey != "" {
		if value, ok := q.cache.Get(cacheKey); ok {
			done <- Result{Value: value}
			return done
		}
	}

	req := &request{
		id:       uuid.NewString(),
		ctx:      ctx,
		cacheKey: cacheKey,
		work:     work,
		done:     done,
	}

	q.mu.Lock()
	q.items = append(q.items, req)
	start := !q.processing
	if start {
		q.processing = true
	}
	q.mu.Unlock()

	q.l.Debugf(ctx, "requestqueue: enqueued %s (cache_key=%q)", req.id, cacheKey)

	if start {
		go q.run()
	}
	return done
}

// Do submits work and blocks until its terminal result.
func (q *Queue) Do(ctx context.Context, cacheKey string, work Work) (string, error) {
	res := <-q.Enqueue(ctx, cacheKey, work)
	return res.Value, res.Err
}

// run is the single processing loop. It inspects, but does not remove,
// the head until the head reaches a terminal state, so later arrivals
// wait behind a struggling head. The loop exits when the queue drains.
func (q *Queue) run() {
	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			q.processing = false
			q.mu.Unlock()
			return
		}
		head := q.items[0]
		q.mu.Unlock()

		if wait := q.gap - q.clock.Now().Sub(q.lastDispatch); wait > 0 {
			q.clock.Sleep(wait)
		}
		q.lastDispatch = q.clock.Now()

		value, err := head.work(head.ctx)
		if err == nil {
			if head.cacheKey != "" {
				q.cache.Add(head.cacheKey, value)
			}
			head.done <- Result{Value: value}
			q.pop()
			continue
		}

		head.retries++
		q.l.Warnf(head.ctx, "requestqueue: request %s failed (attempt %d/%d): %v",
			head.id, head.retries, q.maxRetries, err)

		if head.retries >= q.maxRetries {
			head.done <- Result{Err: fmt.Errorf("request failed after %d attempts: %w", head.retries, err)}
			q.pop()
			continue
		}

		// Exponential backoff, then retry the same head in place.
		q.clock.Sleep(time.Duration(1<<head.retries) * time.Second)
	}
}

func (q *Queue) pop() {
	q.mu.Lock()
	q.items = q.items[1:]
	q.mu.Unlock()
}
