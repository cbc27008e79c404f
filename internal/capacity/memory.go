package capacity

import (
	"context"
	"sync"

	"github.com/kappucake/cakeapi/pkg/errors"
)

// MemoryReserver keeps per-date counters in memory. Counters do not survive a
// restart; use the postgres reserver when that matters.
type MemoryReserver struct {
	mu        sync.Mutex
	booked    map[string]int
	maxPerDay int
}

// NewMemoryReserver creates an in-memory reserver bounded by maxPerDay.
func NewMemoryReserver(maxPerDay int) *MemoryReserver {
	return &MemoryReserver{
		booked:    make(map[string]int),
		maxPerDay: maxPerDay,
	}
}

func (r *MemoryReserver) Reserve(_ context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.booked[date] >= r.maxPerDay {
		return &errors.ErrCapacityExceeded{Date: date}
	}
	r.booked[date]++
	return nil
}

func (r *MemoryReserver) Release(_ context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.booked[date] > 0 {
		r.booked[date]--
	}
	return nil
}
