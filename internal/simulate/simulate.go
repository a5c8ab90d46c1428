// Package simulate drives a seating manager with concurrent workers and
// checks the pool and queue accounting afterwards.
package simulate

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"seatd/internal/manager"
	"seatd/pkg/types"
)

// Scenario selects what each worker does with its group.
type Scenario string

const (
	// ArriveLeave: every worker arrives; even workers leave again.
	ArriveLeave Scenario = "arrive-leave"
	// ArriveLookup: every worker arrives; even workers look up afterwards.
	ArriveLookup Scenario = "arrive-lookup"
	// LeaveLookup: every worker arrives; even workers leave, every third looks up.
	LeaveLookup Scenario = "leave-lookup"
	// Mixed: even workers arrive and look up, odd workers only leave.
	Mixed Scenario = "mixed"
	// MultiLeave: every worker arrives; every third worker leaves.
	MultiLeave Scenario = "multi-leave"
)

// Scenarios lists every supported scenario.
var Scenarios = []Scenario{ArriveLeave, ArriveLookup, LeaveLookup, Mixed, MultiLeave}

// ParseScenario maps a name to a Scenario.
func ParseScenario(s string) (Scenario, error) {
	sc := Scenario(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Scenarios, sc) {
		return sc, nil
	}
	return "", fmt.Errorf("unknown scenario %q", s)
}

// Options configures a run.
type Options struct {
	Scenario Scenario
	Workers  int
	// Concurrency caps the goroutines running at once; 0 means Workers.
	Concurrency int
	// SizeOf picks the group size for worker i (1-based).
	// Defaults to i%3+2, which cycles 3,4,2.
	SizeOf func(i int) int
}

// Report summarizes a finished run.
type Report struct {
	Scenario   Scenario
	Workers    int
	Arrivals   int
	Departures int
	Lookups    int
	Status     types.StatusResponse
	// Violations lists broken invariants; empty on a healthy run.
	Violations []string
}

// OK reports whether the run finished without invariant violations.
func (r Report) OK() bool { return len(r.Violations) == 0 }

type counts struct{ arrivals, departures, lookups int }

// Run executes the scenario against m and returns the report. It stops early
// only if ctx is canceled, in which case the error is ctx.Err().
func Run(ctx context.Context, m *manager.Manager, opts Options) (Report, error) {
	if opts.Workers <= 0 {
		return Report{}, fmt.Errorf("workers must be positive, got %d", opts.Workers)
	}
	if opts.SizeOf == nil {
		opts.SizeOf = func(i int) int { return i%3 + 2 }
	}
	initial := m.GetTables()
	startVersion := m.Version()
	seeded := map[int]bool{}
	for _, t := range initial {
		seeded[t.Capacity] = true
	}

	planned := make([]counts, opts.Workers)
	lookupErrs := make([][]string, opts.Workers)

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i := 1; i <= opts.Workers; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			grp := types.ClientsGroup{Size: opts.SizeOf(i)}
			c, errs := step(m, opts.Scenario, i, grp, seeded)
			planned[i-1] = c
			lookupErrs[i-1] = errs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := Report{Scenario: opts.Scenario, Workers: opts.Workers, Status: m.Status()}
	for i := range planned {
		rep.Arrivals += planned[i].arrivals
		rep.Departures += planned[i].departures
		rep.Lookups += planned[i].lookups
		rep.Violations = append(rep.Violations, lookupErrs[i]...)
	}
	rep.Violations = append(rep.Violations, checkAccounting(initial, startVersion, rep)...)
	return rep, nil
}

func step(m *manager.Manager, sc Scenario, i int, g types.ClientsGroup, seeded map[int]bool) (counts, []string) {
	var (
		c    counts
		errs []string
	)
	lookup := func() {
		c.lookups++
		if t, ok := m.Lookup(g); ok {
			if msg := lookupViolation(seeded, g, t); msg != "" {
				errs = append(errs, fmt.Sprintf("worker %d: %s", i, msg))
			}
		}
	}
	switch sc {
	case ArriveLeave:
		m.Arrive(g)
		c.arrivals++
		if i%2 == 0 {
			m.Leave(g)
			c.departures++
		}
	case ArriveLookup:
		m.Arrive(g)
		c.arrivals++
		if i%2 == 0 {
			lookup()
		}
	case LeaveLookup:
		m.Arrive(g)
		c.arrivals++
		if i%2 == 0 {
			m.Leave(g)
			c.departures++
		}
		if i%3 == 0 {
			lookup()
		}
	case Mixed:
		if i%2 == 0 {
			m.Arrive(g)
			c.arrivals++
			lookup()
		} else {
			m.Leave(g)
			c.departures++
		}
	case MultiLeave:
		m.Arrive(g)
		c.arrivals++
		if i%3 == 0 {
			m.Leave(g)
			c.departures++
		}
	}
	return c, errs
}

// lookupViolation checks a Lookup result against the seating rule written
// out independently of the manager: the table was seeded, has at least
// g.Size seats and at most one spare.
func lookupViolation(seeded map[int]bool, g types.ClientsGroup, t types.Table) string {
	switch {
	case !seeded[t.Capacity]:
		return fmt.Sprintf("lookup for size %d returned unseeded capacity %d", g.Size, t.Capacity)
	case t.Capacity < g.Size:
		return fmt.Sprintf("lookup for size %d returned too small capacity %d", g.Size, t.Capacity)
	case t.Capacity-g.Size > 1:
		return fmt.Sprintf("lookup for size %d returned capacity %d with more than one spare seat", g.Size, t.Capacity)
	}
	return ""
}

// checkAccounting assumes the run had exclusive use of the manager.
func checkAccounting(initial []types.Table, startVersion uint64, rep Report) []string {
	var out []string
	st := rep.Status
	remaining := map[int]int{}
	for _, t := range initial {
		remaining[t.Capacity]++
	}
	for _, t := range st.FreeTables {
		remaining[t.Capacity]--
		if remaining[t.Capacity] < 0 {
			out = append(out, fmt.Sprintf("pool holds an unseeded table of capacity %d", t.Capacity))
		}
	}
	if want := startVersion + uint64(rep.Arrivals+rep.Departures); st.Version != want {
		out = append(out, fmt.Sprintf("version %d, want %d", st.Version, want))
	}
	if st.QueuedTotal < st.DequeuedTotal || st.QueuedTotal-st.DequeuedTotal != uint64(len(st.Queue)) {
		out = append(out, fmt.Sprintf("queue length %d does not match queued %d - dequeued %d", len(st.Queue), st.QueuedTotal, st.DequeuedTotal))
	}
	return out
}
