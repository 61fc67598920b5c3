package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/fastbite/api/internal/repositories"
)

// CounterRepository mints monotonically increasing sequences in memory.
type CounterRepository struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewCounterRepository constructs an in-memory counter repository.
func NewCounterRepository() *CounterRepository {
	return &CounterRepository{counters: map[string]int64{}}
}

// Next atomically increments the named counter and returns the new value.
// A non-positive step defaults to 1.
func (r *CounterRepository) Next(_ context.Context, counterID string, step int64) (int64, error) {
	id := strings.TrimSpace(counterID)
	if id == "" {
		return 0, repositories.NewConflict("memory.counters.next", "counter id is required")
	}
	if step <= 0 {
		step = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[id] += step
	return r.counters[id], nil
}
