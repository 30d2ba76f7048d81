package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DefaultEscalationInterval is how often overdue tickets are swept.
const DefaultEscalationInterval = time.Minute

// Escalator escalates overdue tickets and reports how many changed.
type Escalator interface {
	EscalateOverdue(ctx context.Context) (int, error)
}

// EscalationRecorder receives sweep results.
type EscalationRecorder interface {
	RecordEscalations(n int)
}

// EscalationWorker periodically escalates tickets past their SLA deadline.
type EscalationWorker struct {
	escalator Escalator
	recorder  EscalationRecorder
	interval  time.Duration
	logger    *zap.Logger
}

// NewEscalationWorker builds a worker. A non-positive interval uses DefaultEscalationInterval.
func NewEscalationWorker(escalator Escalator, recorder EscalationRecorder, interval time.Duration, logger *zap.Logger) *EscalationWorker {
	if interval <= 0 {
		interval = DefaultEscalationInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EscalationWorker{escalator: escalator, recorder: recorder, interval: interval, logger: logger}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (w *EscalationWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("escalation worker started", zap.Duration("interval", w.interval))
	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("escalation worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// Start runs the worker in its own goroutine. The returned channel closes once it exits.
func (w *EscalationWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	return done
}

func (w *EscalationWorker) sweep(ctx context.Context) {
	n, err := w.escalator.EscalateOverdue(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Error("escalation sweep failed", zap.Error(err))
		}
		return
	}
	if w.recorder != nil {
		w.recorder.RecordEscalations(n)
	}
	if n > 0 {
		w.logger.Info("tickets escalated", zap.Int("count", n))
	}
}
