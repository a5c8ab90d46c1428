package simulate

import (
	"context"
	"testing"

	"seatd/internal/manager"
	"seatd/pkg/types"
)

func restaurant() *manager.Manager {
	return manager.New([]types.Table{{Capacity: 4}, {Capacity: 2}})
}

func TestRunAllScenariosKeepInvariants(t *testing.T) {
	for _, sc := range Scenarios {
		t.Run(string(sc), func(t *testing.T) {
			rep, err := Run(context.Background(), restaurant(), Options{Scenario: sc, Workers: 10})
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if !rep.OK() {
				t.Fatalf("violations: %v", rep.Violations)
			}
			for _, tbl := range rep.Status.FreeTables {
				if tbl.Capacity != 2 && tbl.Capacity != 4 {
					t.Fatalf("unexpected table in pool: %+v", tbl)
				}
			}
		})
	}
}

func TestRunCountsOperations(t *testing.T) {
	rep, err := Run(context.Background(), restaurant(), Options{Scenario: Mixed, Workers: 10})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Arrivals != 5 || rep.Departures != 5 || rep.Lookups != 5 {
		t.Fatalf("unexpected counts: %+v", rep)
	}
	if rep.Status.Version != 10 {
		t.Fatalf("version=%d want 10", rep.Status.Version)
	}
}

func TestRunWithConcurrencyLimitAndCustomSizes(t *testing.T) {
	m := manager.New([]types.Table{{Capacity: 3}, {Capacity: 3}, {Capacity: 3}})
	rep, err := Run(context.Background(), m, Options{
		Scenario:    ArriveLookup,
		Workers:     8,
		Concurrency: 2,
		SizeOf:      func(int) int { return 3 },
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Status.SeatedTotal != 3 || len(rep.Status.Queue) != 5 {
		t.Fatalf("unexpected status: %+v", rep.Status)
	}
	if !rep.OK() {
		t.Fatalf("violations: %v", rep.Violations)
	}
}

func TestRunRejectsNoWorkers(t *testing.T) {
	if _, err := Run(context.Background(), restaurant(), Options{Scenario: Mixed}); err == nil {
		t.Fatalf("expected error for zero workers")
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := restaurant()
	if _, err := Run(ctx, m, Options{Scenario: ArriveLeave, Workers: 4}); err == nil {
		t.Fatalf("expected context error")
	}
	if v := m.Version(); v != 0 {
		t.Fatalf("canceled run touched the manager, version=%d", v)
	}
}

func TestParseScenario(t *testing.T) {
	if sc, err := ParseScenario(" Mixed "); err != nil || sc != Mixed {
		t.Fatalf("got %q err=%v", sc, err)
	}
	if _, err := ParseScenario("chaos"); err == nil {
		t.Fatalf("expected error for unknown scenario")
	}
}

func TestLookupViolation(t *testing.T) {
	seeded := map[int]bool{2: true, 4: true, 7: true}
	cases := []struct {
		name string
		size int
		cap  int
		bad  bool
	}{
		{"exact", 4, 4, false},
		{"one spare", 3, 4, false},
		{"two spare", 2, 4, true},
		{"too small", 5, 4, true},
		{"unseeded", 5, 5, true},
		{"large spare", 2, 7, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			msg := lookupViolation(seeded, types.ClientsGroup{Size: c.size}, types.Table{Capacity: c.cap})
			if (msg != "") != c.bad {
				t.Fatalf("lookupViolation(size=%d, cap=%d)=%q, want violation=%v", c.size, c.cap, msg, c.bad)
			}
		})
	}
}
