package manager

import "context"

// Version returns the current state version. It starts at zero and grows by
// one on every Arrive and Leave.
func (m *Manager) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Changed returns a channel that is closed by the next Arrive or Leave.
func (m *Manager) Changed() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.changed
}

// WaitForChange blocks until the version is greater than since and returns it.
// It returns ctx.Err() if ctx ends first.
func (m *Manager) WaitForChange(ctx context.Context, since uint64) (uint64, error) {
	for {
		m.mu.Lock()
		v, ch := m.version, m.changed
		m.mu.Unlock()
		if v > since {
			return v, nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}
