// Package notify holds the default event sink, which records lifecycle
// events in the application log.
package notify

import (
	"context"
	"log/slog"

	"github.com/CATIGERN/job-applications/internal/domain"
)

var _ domain.EventNotifier = (*LogNotifier)(nil)

// LogNotifier writes every lifecycle event as a structured log line.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs through logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, event domain.PublishEvent) error {
	n.logger.InfoContext(ctx, "lifecycle event",
		"event_id", event.ID.String(),
		"event_type", string(event.EventType),
		"status", string(event.Status),
		"transaction_time", event.TransactionTime,
		"event_data", event.EventData,
	)
	return nil
}
