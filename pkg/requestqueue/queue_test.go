package requestqueue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"daybalance/pkg/requestqueue"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeClock advances virtual time on Sleep and records every sleep.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
}

func (c *fakeClock) recorded() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}

func TestDispatchOrderAndGap(t *testing.T) {
	clock := newFakeClock()
	q := requestqueue.New(nopLogger{}, requestqueue.WithClock(clock))

	var mu sync.Mutex
	var dispatched []string
	var stamps []time.Time

	work := func(name string) requestqueue.Work {
		return func(ctx context.Context) (string, error) {
			mu.Lock()
			dispatched = append(dispatched, name)
			stamps = append(stamps, clock.Now())
			mu.Unlock()
			return name, nil
		}
	}

	chans := []<-chan requestqueue.Result{
		q.Enqueue(context.Background(), "", work("a")),
		q.Enqueue(context.Background(), "", work("b")),
		q.Enqueue(context.Background(), "", work("c")),
	}

	for i, ch := range chans {
		res := <-ch
		if res.Err != nil {
			t.Fatalf("request %d failed: %v", i, res.Err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"a", "b", "c"}
	for i := range want {
		if dispatched[i] != want[i] {
			t.Fatalf("dispatch order = %v, want %v", dispatched, want)
		}
	}
	for i := 1; i < len(stamps); i++ {
		if gap := stamps[i].Sub(stamps[i-1]); gap < 2*time.Second {
			t.Errorf("gap between dispatch %d and %d = %v, want >= 2s", i-1, i, gap)
		}
	}
}

func TestCacheShortCircuits(t *testing.T) {
	clock := newFakeClock()
	q := requestqueue.New(nopLogger{}, requestqueue.WithClock(clock))

	calls := 0
	work := func(ctx context.Context) (string, error) {
		calls++
		return "cached value", nil
	}

	first, err := q.Do(context.Background(), "advice:2025-01-15", work)
	if err != nil {
		t.Fatalf("first Do: %v", err)
	}
	second, err := q.Do(context.Background(), "advice:2025-01-15", work)
	if err != nil {
		t.Fatalf("second Do: %v", err)
	}

	if first != "cached value" || second != "cached value" {
		t.Errorf("results = %q, %q", first, second)
	}
	if calls != 1 {
		t.Errorf("work invoked %d times, want 1 (second call served from cache)", calls)
	}
}

func TestEmptyCacheKeyNeverCached(t *testing.T) {
	clock := newFakeClock()
	q := requestqueue.New(nopLogger{}, requestqueue.WithClock(clock))

	calls := 0
	work := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, _ = q.Do(context.Background(), "", work)
	_, _ = q.Do(context.Background(), "", work)

	if calls != 2 {
		t.Errorf("work invoked %d times, want 2", calls)
	}
}

func TestRetryWithBackoffThenSuccess(t *testing.T) {
	clock := newFakeClock()
	q := requestqueue.New(nopLogger{}, requestqueue.WithClock(clock))

	attempts := 0
	work := func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("backend unavailable")
		}
		return "ok", nil
	}

	got, err := q.Do(context.Background(), "", work)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got != "ok" || attempts != 3 {
		t.Errorf("got %q after %d attempts", got, attempts)
	}

	// Backoff sleeps are 2^1 and 2^2 seconds.
	var backoffs []time.Duration
	for _, d := range clock.recorded() {
		if d == 2*time.Second || d == 4*time.Second {
			backoffs = append(backoffs, d)
		}
	}
	if len(backoffs) < 2 {
		t.Errorf("expected exponential backoff sleeps, recorded %v", clock.recorded())
	}
}

func TestExhaustedRetriesSurfaceErrorAndUnblockQueue(t *testing.T) {
	clock := newFakeClock()
	q := requestqueue.New(nopLogger{}, requestqueue.WithClock(clock))

	failing := func(ctx context.Context) (string, error) {
		return "", errors.New("hard down")
	}
	healthy := func(ctx context.Context) (string, error) {
		return "fine", nil
	}

	failCh := q.Enqueue(context.Background(), "", failing)
	okCh := q.Enqueue(context.Background(), "", healthy)

	if res := <-failCh; res.Err == nil {
		t.Errorf("expected terminal error after exhausted retries")
	}
	if res := <-okCh; res.Err != nil || res.Value != "fine" {
		t.Errorf("later request should run after head exhausts: %+v", res)
	}
}

func TestFailureIsNotCached(t *testing.T) {
	clock := newFakeClock()
	q := requestqueue.New(nopLogger{}, requestqueue.WithClock(clock),
		requestqueue.WithMaxRetries(1))

	calls := 0
	work := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("boom")
		}
		return "recovered", nil
	}

	if _, err := q.Do(context.Background(), "k", work); err == nil {
		t.Fatalf("expected first call to fail")
	}
	got, err := q.Do(context.Background(), "k", work)
	if err != nil || got != "recovered" {
		t.Errorf("second call = %q, %v", got, err)
	}
}
