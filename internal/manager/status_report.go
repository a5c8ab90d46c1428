package manager

import (
	"time"

	"seatd/pkg/types"
)

// Status builds a consistent snapshot of the pool, the queue and the counters.
func (m *Manager) Status() types.StatusResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	resp := types.StatusResponse{
		FreeTables:     make([]types.Table, len(m.tables)),
		Queue:          make([]types.ClientsGroup, len(m.queue)),
		SeatedTotal:    m.seatedTotal,
		QueuedTotal:    m.queuedTotal,
		RetiredTotal:   m.retiredTotal,
		DequeuedTotal:  m.dequeuedTotal,
		Version:        m.version,
		UptimeSeconds:  int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
	copy(resp.FreeTables, m.tables)
	copy(resp.Queue, m.queue)
	return resp
}
