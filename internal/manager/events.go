package manager

import (
	"time"

	"github.com/google/uuid"
)

// Event names published by the manager.
const (
	EventGroupSeated   = "group_seated"
	EventGroupQueued   = "group_queued"
	EventTableRetired  = "table_retired"
	EventGroupDequeued = "group_dequeued"
	EventLeaveNoop     = "leave_noop"
)

// Event represents a seating state change.
// Capacity is zero when no table was involved.
type Event struct {
	ID       string
	Name     string
	Time     time.Time
	Size     int
	Capacity int
	Version  uint64
	Fields   map[string]any
}

func newEvent(name string, size, capacity int, version uint64, fields map[string]any) Event {
	if fields == nil {
		fields = map[string]any{}
	}
	return Event{
		ID:       uuid.NewString(),
		Name:     name,
		Time:     time.Now(),
		Size:     size,
		Capacity: capacity,
		Version:  version,
		Fields:   fields,
	}
}

// EventPublisher receives events from the manager. Implementations should be
// lightweight and non-blocking; Publish must not panic.
//
// Publish is called after the manager lock is released, so events from
// concurrent callers can arrive out of order and Publish can run
// concurrently. Every Arrive and Leave produces exactly one event with a
// distinct Version; order by Version to recover the mutation order.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// MultiPublisher fans an event out to every non-nil publisher in order.
type MultiPublisher []EventPublisher

func (mp MultiPublisher) Publish(e Event) {
	for _, p := range mp {
		if p != nil {
			p.Publish(e)
		}
	}
}
