package audit

import (
	"context"
	"log/slog"
	"time"
)

// Buffer decouples request handling from the broker: Emit never blocks a
// request, and the Worker drains the inbox into the real sink in the
// background. When the inbox is full the event is dropped; audit is
// best-effort and must not back-pressure writes.
type Buffer struct {
	inbox chan Event
}

func NewBuffer(size int) *Buffer {
	return &Buffer{inbox: make(chan Event, size)}
}

func (b *Buffer) Emit(_ context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case b.inbox <- event:
	default:
	}
	return nil
}

// Worker consumes audit events from a buffer and forwards them to a sink.
// Sink failures are logged and the event dropped; the worker keeps running.
type Worker struct {
	sink   Publisher
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Publisher, buffer *Buffer, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: buffer.inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Emit(ctx, event); err != nil {
				w.logger.Warn("audit event dropped", "action", event.Action, "error", err)
			}
		}
	}
}
