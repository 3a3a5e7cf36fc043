package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"agendo/internal/domain"
)

// ErrWindowUnavailable is returned when a fetch is attempted before the week
// window is fully resolved. The caller should retry once it knows the window;
// prior cache state is untouched.
var ErrWindowUnavailable = errors.New("week window is not fully resolved")

// AppointmentQuerier is the backend collaborator consulted on a cache miss.
// It must return only non-cancelled appointments for the professional within
// the closed date interval, ordered by date then start time.
type AppointmentQuerier interface {
	QueryAppointments(ctx context.Context, professionalID int64, dateFrom, dateTo string) ([]domain.Appointment, error)
}

// Cache memoizes week fetches per professional under the composite key
// "professionalID-windowStart-windowEnd". Entries are replaced or evicted
// wholesale, never patched. Invalidate clears everything: a single mutation
// can affect windows and professionals other than the one mutated, and
// global eviction is correct without tracking which.
type Cache struct {
	querier AppointmentQuerier
	timeout time.Duration

	mu       sync.Mutex
	epoch    uint64
	entries  map[string][]domain.Appointment
	inflight map[string]*fetchCall
}

type fetchCall struct {
	done  chan struct{}
	appts []domain.Appointment
	err   error
}

// NewCache wraps the querier. fetchTimeout bounds each backend query; zero
// disables the bound.
func NewCache(querier AppointmentQuerier, fetchTimeout time.Duration) *Cache {
	return &Cache{
		querier:  querier,
		timeout:  fetchTimeout,
		entries:  make(map[string][]domain.Appointment),
		inflight: make(map[string]*fetchCall),
	}
}

// Fetch returns the appointments for the professional's week. A cached entry
// is served without touching the backend; otherwise exactly one query runs
// per key, with concurrent misses on the same key coalesced onto it. A failed
// query stores nothing, and a query that outlives an Invalidate does not
// resurrect its stale result.
func (c *Cache) Fetch(ctx context.Context, professionalID int64, windowStart, windowEnd string) ([]domain.Appointment, error) {
	if !validWindow(windowStart, windowEnd) {
		return nil, ErrWindowUnavailable
	}
	key := cacheKey(professionalID, windowStart, windowEnd)

	c.mu.Lock()
	if appts, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return appts, nil
	}
	if call, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.appts, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &fetchCall{done: make(chan struct{})}
	c.inflight[key] = call
	epoch := c.epoch
	c.mu.Unlock()

	fetchCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	appts, err := c.querier.QueryAppointments(fetchCtx, professionalID, windowStart, windowEnd)

	c.mu.Lock()
	if c.inflight[key] == call {
		delete(c.inflight, key)
	}
	if err == nil && c.epoch == epoch {
		c.entries[key] = appts
	}
	c.mu.Unlock()

	call.appts, call.err = appts, err
	close(call.done)
	return appts, err
}

// Invalidate evicts every entry. Every successful create, update or cancel
// must call this before the next read can be trusted; failed mutations must
// not, so valid cached data survives a no-op write.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.epoch++
	c.entries = make(map[string][]domain.Appointment)
	c.mu.Unlock()
}

func cacheKey(professionalID int64, windowStart, windowEnd string) string {
	return fmt.Sprintf("%d-%s-%s", professionalID, windowStart, windowEnd)
}

func validWindow(windowStart, windowEnd string) bool {
	start, err := ParseISODate(windowStart)
	if err != nil {
		return false
	}
	end, err := ParseISODate(windowEnd)
	if err != nil {
		return false
	}
	return end.Sub(start) == 6*24*time.Hour
}
