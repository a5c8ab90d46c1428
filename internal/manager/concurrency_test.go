package manager

import (
	"sync"
	"testing"

	"seatd/pkg/types"
)

// checkAccounting verifies that the pool only ever loses tables it started
// with and that the counters explain the final pool and queue.
func checkAccounting(t *testing.T, m *Manager, initial []types.Table, arrivals int) {
	t.Helper()
	s := m.Status()
	remaining := map[int]int{}
	for _, tbl := range initial {
		remaining[tbl.Capacity]++
	}
	for _, tbl := range s.FreeTables {
		remaining[tbl.Capacity]--
		if remaining[tbl.Capacity] < 0 {
			t.Fatalf("pool holds a table that was never seeded: %+v", s.FreeTables)
		}
	}
	if got := uint64(len(s.FreeTables)) + s.SeatedTotal + s.RetiredTotal; got != uint64(len(initial)) {
		t.Fatalf("free+seated+retired=%d want %d (%+v)", got, len(initial), s)
	}
	if got := s.SeatedTotal + s.QueuedTotal; got != uint64(arrivals) {
		t.Fatalf("seated+queued=%d want %d", got, arrivals)
	}
	if got := s.QueuedTotal - s.DequeuedTotal; got != uint64(len(s.Queue)) {
		t.Fatalf("queued-dequeued=%d but queue has %d", got, len(s.Queue))
	}
}

func checkLookup(t *testing.T, tbl types.Table, ok bool, g types.ClientsGroup) {
	if ok && !Fits(tbl, g) {
		t.Errorf("lookup returned %+v for %+v", tbl, g)
	}
}

func TestConcurrentArrivalAndLeaving(t *testing.T) {
	initial := tables(4, 2)
	m := New(initial)
	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g := group(i%3 + 2)
			m.Arrive(g)
			if i%2 == 0 {
				m.Leave(g)
			}
		}(i)
	}
	wg.Wait()
	checkAccounting(t, m, initial, 10)
}

func TestConcurrentArrivalLeavingAndLookup(t *testing.T) {
	initial := tables(4, 2, 3, 5, 2, 4)
	m := New(initial)
	const workers = 64
	var wg sync.WaitGroup
	arrivals := 0
	for i := 1; i <= workers; i++ {
		if i%2 == 0 {
			arrivals++
		}
	}
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g := group(i%3 + 2)
			if i%2 == 0 {
				m.Arrive(g)
				tbl, ok := m.Lookup(g)
				checkLookup(t, tbl, ok, g)
			} else {
				m.Leave(g)
			}
			_ = m.IsTableOccupied(types.Table{Capacity: g.Size})
			_ = m.GetQueue()
		}(i)
	}
	wg.Wait()
	checkAccounting(t, m, initial, arrivals)
	if v := m.Version(); v != workers {
		t.Fatalf("version=%d want %d", v, workers)
	}
}

func TestConcurrentArrivalsNeverDoubleSeat(t *testing.T) {
	initial := tables(4, 4, 4, 4, 4)
	m := New(initial)
	const workers = 50
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		seated int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if a := m.Admit(group(4)); a.Seated {
				mu.Lock()
				seated++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if seated != len(initial) {
		t.Fatalf("seated=%d want %d", seated, len(initial))
	}
	if q := m.GetQueue(); len(q) != workers-len(initial) {
		t.Fatalf("queue len=%d want %d", len(q), workers-len(initial))
	}
	checkAccounting(t, m, initial, workers)
}
