package manager

import "seatd/pkg/types"

// Admission is the outcome of an arrival.
type Admission struct {
	// Seated is true when a free table was assigned and removed from the pool.
	Seated bool
	// Table is the assigned table when Seated.
	Table types.Table
	// QueuePosition is the 1-based queue position when not Seated.
	QueuePosition int
	// Version is the manager state version after the arrival.
	Version uint64
}

// Departure is the outcome of a leave request.
type Departure struct {
	// Retired is true when a pooled table matched the group and was removed.
	Retired bool
	Table   types.Table
	// Dequeued counts waiting entries removed because no table matched.
	Dequeued int
	Version  uint64
}
