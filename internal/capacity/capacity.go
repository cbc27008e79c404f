// Package capacity bounds how many orders we accept per delivery date.
package capacity

import "context"

// Reserver hands out booking slots per delivery date. Reserve must be atomic
// per date key so concurrent requests for the same date cannot overbook.
type Reserver interface {
	// Reserve claims one slot for the date, returning *errors.ErrCapacityExceeded
	// when the daily maximum is already reached.
	Reserve(ctx context.Context, date string) error
	// Release returns a previously claimed slot, e.g. when the gateway call
	// that followed the reservation failed.
	Release(ctx context.Context, date string) error
}
