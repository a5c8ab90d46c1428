package manager

import (
	"slices"

	"seatd/pkg/types"
)

// Arrive seats g at the first matching free table, or appends a copy of g to
// the waiting queue when no table matches. It never blocks.
func (m *Manager) Arrive(g types.ClientsGroup) {
	_ = m.Admit(g)
}

// Admit behaves exactly like Arrive and reports the outcome.
func (m *Manager) Admit(g types.ClientsGroup) Admission {
	m.mu.Lock()
	var a Admission
	if i := m.lookupLocked(g); i >= 0 {
		a.Seated = true
		a.Table = m.tables[i]
		m.tables = slices.Delete(m.tables, i, i+1)
		m.seatedTotal++
	} else {
		m.queue = append(m.queue, types.ClientsGroup{Size: g.Size})
		a.QueuePosition = len(m.queue)
		m.queuedTotal++
	}
	a.Version = m.bumpLocked()
	pub := m.publisher
	m.mu.Unlock()

	if a.Seated {
		pub.Publish(newEvent(EventGroupSeated, g.Size, a.Table.Capacity, a.Version, nil))
	} else {
		pub.Publish(newEvent(EventGroupQueued, g.Size, 0, a.Version, map[string]any{"position": a.QueuePosition}))
	}
	return a
}

// Leave handles a departing group. When a free table matches g under the
// tolerance rule, that table is removed from the pool for good. Otherwise
// every queued group equal to g is removed.
func (m *Manager) Leave(g types.ClientsGroup) {
	_ = m.Depart(g)
}

// Depart behaves exactly like Leave and reports the outcome.
func (m *Manager) Depart(g types.ClientsGroup) Departure {
	m.mu.Lock()
	var d Departure
	if i := m.lookupLocked(g); i >= 0 {
		d.Retired = true
		d.Table = m.tables[i]
		m.tables = slices.Delete(m.tables, i, i+1)
		m.retiredTotal++
	} else {
		before := len(m.queue)
		m.queue = slices.DeleteFunc(m.queue, func(q types.ClientsGroup) bool { return q == g })
		d.Dequeued = before - len(m.queue)
		m.dequeuedTotal += uint64(d.Dequeued)
	}
	d.Version = m.bumpLocked()
	pub := m.publisher
	m.mu.Unlock()

	switch {
	case d.Retired:
		pub.Publish(newEvent(EventTableRetired, g.Size, d.Table.Capacity, d.Version, nil))
	case d.Dequeued > 0:
		pub.Publish(newEvent(EventGroupDequeued, g.Size, 0, d.Version, map[string]any{"count": d.Dequeued}))
	default:
		pub.Publish(newEvent(EventLeaveNoop, g.Size, 0, d.Version, nil))
	}
	return d
}

// Lookup returns a copy of the first free table that fits g, in pool order.
// The boolean is false when no table qualifies.
func (m *Manager) Lookup(g types.ClientsGroup) (types.Table, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.lookupLocked(g)
	if i < 0 {
		return types.Table{}, false
	}
	return m.tables[i], true
}

// lookupLocked returns the pool index of the first table that fits g, or -1.
func (m *Manager) lookupLocked(g types.ClientsGroup) int {
	return slices.IndexFunc(m.tables, func(t types.Table) bool { return Fits(t, g) })
}

// bumpLocked advances the version and wakes everyone blocked on Changed.
func (m *Manager) bumpLocked() uint64 {
	m.version++
	close(m.changed)
	m.changed = make(chan struct{})
	return m.version
}
