package manager

import (
	"context"
	"errors"
	"testing"
	"time"
)

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestChangedClosesOnMutation(t *testing.T) {
	m := New(tables(4))
	ch := m.Changed()
	select {
	case <-ch:
		t.Fatalf("channel closed before any mutation")
	default:
	}
	m.Leave(group(1))
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatalf("channel not closed after leave")
	}
	if m.Changed() == ch {
		t.Fatalf("expected a fresh channel after broadcast")
	}
}

func TestWaitForChangeReturnsImmediatelyWhenBehind(t *testing.T) {
	m := New(tables(4))
	m.Arrive(group(4))
	v, err := m.WaitForChange(testCtx(t), 0)
	if err != nil || v != 1 {
		t.Fatalf("v=%d err=%v", v, err)
	}
}

func TestWaitForChangeWakesOnArrive(t *testing.T) {
	m := New(tables(2))
	done := make(chan uint64, 1)
	go func() {
		v, err := m.WaitForChange(testCtx(t), 0)
		if err != nil {
			t.Errorf("wait: %v", err)
		}
		done <- v
	}()
	time.Sleep(20 * time.Millisecond)
	m.Arrive(group(8))
	select {
	case v := <-done:
		if v != 1 {
			t.Fatalf("version=%d want 1", v)
		}
	case <-time.After(time.Second):
		t.Fatalf("waiter not woken")
	}
}

func TestWaitForChangeHonorsContext(t *testing.T) {
	m := New(tables(2))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := m.WaitForChange(ctx, 0); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
