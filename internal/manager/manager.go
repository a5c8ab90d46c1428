package manager

import (
	"sync"
	"time"

	"seatd/pkg/types"
)

// Manager owns the free-table pool and the waiting queue.
// Every exported method holds mu for its whole body.
type Manager struct {
	mu     sync.Mutex
	tables []types.Table
	queue  []types.ClientsGroup

	// version increments on every arrival and departure; changed is closed
	// and replaced at the same time.
	version uint64
	changed chan struct{}

	seatedTotal   uint64
	queuedTotal   uint64
	retiredTotal  uint64
	dequeuedTotal uint64

	publisher EventPublisher
	startTime time.Time
}

// New seeds a manager with the given free tables.
// A nil slice or a table without seats is a programming error and panics.
func New(tables []types.Table) *Manager {
	return NewWithConfig(ManagerConfig{Tables: tables})
}

// GetTables returns a copy of the free-table pool in pool order.
func (m *Manager) GetTables() []types.Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.Table, len(m.tables))
	copy(out, m.tables)
	return out
}

// GetQueue returns a copy of the waiting queue in arrival order.
func (m *Manager) GetQueue() []types.ClientsGroup {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]types.ClientsGroup, len(m.queue))
	copy(out, m.queue)
	return out
}

// IsTableOccupied reports whether no free table equal to t is in the pool.
func (m *Manager) IsTableOccupied(t types.Table) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return indexOfTable(m.tables, t) < 0
}

// SetEventPublisher installs p; nil restores the default no-op publisher.
func (m *Manager) SetEventPublisher(p EventPublisher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p == nil {
		m.publisher = noopPublisher{}
		return
	}
	m.publisher = p
}
