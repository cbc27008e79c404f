package capacity

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kappucake/cakeapi/pkg/errors"
)

func TestMemoryReserver_Bounds(t *testing.T) {
	r := NewMemoryReserver(2)
	ctx := context.Background()

	require.NoError(t, r.Reserve(ctx, "2026-09-01"))
	require.NoError(t, r.Reserve(ctx, "2026-09-01"))

	err := r.Reserve(ctx, "2026-09-01")
	require.Error(t, err)
	exceeded, ok := err.(*errors.ErrCapacityExceeded)
	require.True(t, ok, "expected ErrCapacityExceeded, got %T", err)
	assert.Equal(t, "2026-09-01", exceeded.Date)

	// Other dates are independent.
	assert.NoError(t, r.Reserve(ctx, "2026-09-02"))
}

func TestMemoryReserver_ReleaseFreesSlot(t *testing.T) {
	r := NewMemoryReserver(1)
	ctx := context.Background()

	require.NoError(t, r.Reserve(ctx, "2026-09-01"))
	require.Error(t, r.Reserve(ctx, "2026-09-01"))

	require.NoError(t, r.Release(ctx, "2026-09-01"))
	assert.NoError(t, r.Reserve(ctx, "2026-09-01"))
}

func TestMemoryReserver_ConcurrentReservesNeverOverbook(t *testing.T) {
	const maxPerDay = 10
	const attempts = 100

	r := NewMemoryReserver(maxPerDay)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- r.Reserve(ctx, "2026-09-01")
		}()
	}
	wg.Wait()
	close(results)

	granted := 0
	for err := range results {
		if err == nil {
			granted++
		}
	}
	assert.Equal(t, maxPerDay, granted)
}
