package testutil

import (
	"testing"
	"time"

	"github.com/nhle/taskboard/internal/store"
)

// NewSeededStore creates a Store loaded with the default fixtures.
func NewSeededStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()

	s := store.New(opts...)
	s.SeedFixtures(store.DefaultFixtures())
	return s
}

// TickingClock returns a clock that starts at start and advances by
// step on every call, so consecutive mutations get strictly increasing
// timestamps.
func TickingClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}
