package app

import (
	"context"
	"log/slog"

	"github.com/CATIGERN/job-applications/internal/domain"
)

// publish hands the event to the notifier. A failing notifier never changes
// the outcome of the mutation that produced the event.
func publish(ctx context.Context, notifier domain.EventNotifier, logger *slog.Logger, event domain.PublishEvent) {
	if err := notifier.Notify(ctx, event); err != nil {
		logger.WarnContext(ctx, "lifecycle event not published",
			"event_id", event.ID.String(),
			"event_type", string(event.EventType),
			"status", string(event.Status),
			"error", err,
		)
	}
}
