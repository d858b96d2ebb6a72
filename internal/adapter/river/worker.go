package river

import (
	"context"
	"log/slog"

	"github.com/riverqueue/river"
)

// EventWorker records lifecycle event jobs from the River queue.
type EventWorker struct {
	river.WorkerDefaults[EventJobArgs]
	logger *slog.Logger
}

// Work processes a single event job.
func (w *EventWorker) Work(ctx context.Context, job *river.Job[EventJobArgs]) error {
	w.logger.InfoContext(ctx, "lifecycle event",
		"event_id", job.Args.EventID,
		"event_type", job.Args.EventType,
		"status", job.Args.Status,
		"transaction_time", job.Args.TransactionTime,
		"event_data", job.Args.EventData,
		"job_id", job.ID,
		"attempt", job.Attempt,
	)
	return nil
}
