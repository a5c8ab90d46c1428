package manager

import (
	"fmt"
	"time"

	"seatd/pkg/types"
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	// Tables seeds the free pool. Must not be nil.
	Tables []types.Table
	// Publisher receives seating events. Defaults to a no-op publisher.
	Publisher EventPublisher
}

// NewWithConfig constructs a Manager from ManagerConfig.
// It panics when cfg.Tables is nil or holds a table without seats.
func NewWithConfig(cfg ManagerConfig) *Manager {
	if cfg.Tables == nil {
		panic("manager: nil table collection")
	}
	for i, t := range cfg.Tables {
		if err := t.Validate(); err != nil {
			panic(fmt.Sprintf("manager: table %d: %v", i, err))
		}
	}
	m := &Manager{
		tables:    append(make([]types.Table, 0, len(cfg.Tables)), cfg.Tables...),
		queue:     make([]types.ClientsGroup, 0),
		changed:   make(chan struct{}),
		publisher: cfg.Publisher,
		startTime: time.Now(),
	}
	if m.publisher == nil {
		m.publisher = noopPublisher{}
	}
	return m
}
