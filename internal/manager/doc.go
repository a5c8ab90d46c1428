// Package manager implements the seating manager: a pool of free tables, a
// waiting queue of client groups, and the arrival, departure and lookup
// operations over them. It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, snapshot getters.
//   - config.go: ManagerConfig; NewWithConfig validates and seeds the pool.
//   - types.go: Admission and Departure outcomes.
//   - helpers.go: the tolerance rule (Fits) and pool search.
//   - seating.go: Arrive/Admit, Leave/Depart, Lookup.
//   - watch.go: version counter and change broadcast (Changed, WaitForChange).
//   - status_report.go: Status snapshot for the HTTP layer.
//   - events.go, eventpub_*.go: event publishers (memory, zerolog, prometheus).
//
// Seating rule: a group of size S is offered the first free table, in pool
// order, with capacity S or S+1. Tables and groups compare by value, so a
// departure matches any queued group of the same size.
//
// All exported methods run under a single mutex. Nothing in this package
// blocks waiting for a table; callers that want to wait layer that on top of
// Changed or WaitForChange.
package manager
