package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveCapacity is returned for tables without at least one seat.
	ErrNonPositiveCapacity = errors.New("table capacity must be positive")
	// ErrNonPositiveSize is returned for groups without at least one client.
	ErrNonPositiveSize = errors.New("group size must be positive")
)

// NewTable builds a validated table.
func NewTable(capacity int) (Table, error) {
	t := Table{Capacity: capacity}
	return t, t.Validate()
}

// NewClientsGroup builds a validated group.
func NewClientsGroup(size int) (ClientsGroup, error) {
	g := ClientsGroup{Size: size}
	return g, g.Validate()
}

func (t Table) Validate() error {
	if t.Capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveCapacity, t.Capacity)
	}
	return nil
}

func (g ClientsGroup) Validate() error {
	if g.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveSize, g.Size)
	}
	return nil
}
