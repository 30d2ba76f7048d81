package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeEscalator struct {
	mu    sync.Mutex
	calls int
	n     int
	err   error
}

func (f *fakeEscalator) EscalateOverdue(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.n, f.err
}

func (f *fakeEscalator) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeRecorder struct {
	mu    sync.Mutex
	total int
}

func (r *fakeRecorder) RecordEscalations(n int) {
	r.mu.Lock()
	r.total += n
	r.mu.Unlock()
}

func (r *fakeRecorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

func TestEscalationWorkerSweepsUntilCancelled(t *testing.T) {
	esc := &fakeEscalator{n: 2}
	rec := &fakeRecorder{}
	w := NewEscalationWorker(esc, rec, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := w.Start(ctx)

	deadline := time.After(2 * time.Second)
	for esc.Calls() < 3 {
		select {
		case <-deadline:
			t.Fatalf("worker swept only %d times", esc.Calls())
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
	if rec.Total() < 6 {
		t.Fatalf("recorded %d escalations, want at least 6", rec.Total())
	}
}

func TestEscalationWorkerSkipsRecordingOnError(t *testing.T) {
	esc := &fakeEscalator{n: 3, err: errors.New("db down")}
	rec := &fakeRecorder{}
	w := NewEscalationWorker(esc, rec, time.Hour, nil)

	w.sweep(context.Background())
	if esc.Calls() != 1 || rec.Total() != 0 {
		t.Fatalf("calls=%d recorded=%d", esc.Calls(), rec.Total())
	}
}

func TestNewEscalationWorkerDefaultsInterval(t *testing.T) {
	w := NewEscalationWorker(&fakeEscalator{}, nil, 0, nil)
	if w.interval != DefaultEscalationInterval {
		t.Fatalf("interval %v", w.interval)
	}
}
