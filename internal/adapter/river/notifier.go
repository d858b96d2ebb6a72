package river

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"github.com/CATIGERN/job-applications/internal/database"
	"github.com/CATIGERN/job-applications/internal/domain"
)

var _ domain.EventNotifier = (*Notifier)(nil)

// EventJobArgs carries a lifecycle event through River's job table. The
// snapshot travels with the job, so the worker never queries the database.
type EventJobArgs struct {
	EventID         string    `json:"event_id"`
	Status          string    `json:"status"`
	EventType       string    `json:"event_type"`
	EventData       string    `json:"event_data"`
	TransactionTime time.Time `json:"transaction_time"`
}

// Kind returns the unique job type identifier used by River's job routing.
func (EventJobArgs) Kind() string { return "lifecycle_event.published" }

// Client is the River client type parameterized for SQLite (*sql.Tx).
type Client = river.Client[*sql.Tx]

// Notifier enqueues lifecycle events as River jobs. Inside a transaction
// started by database.TxManager the job is inserted in that transaction, so
// it only becomes visible if the mutation commits.
type Notifier struct {
	client *Client
}

// NewNotifier creates a notifier backed by the given River client.
func NewNotifier(client *Client) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) Notify(ctx context.Context, event domain.PublishEvent) error {
	args := EventJobArgs{
		EventID:         event.ID.String(),
		Status:          string(event.Status),
		EventType:       string(event.EventType),
		EventData:       event.EventData,
		TransactionTime: event.TransactionTime,
	}

	var err error
	if tx, ok := database.TxFromContext(ctx); ok {
		_, err = n.client.InsertTx(ctx, tx, args, nil)
	} else {
		_, err = n.client.Insert(ctx, args, nil)
	}
	if err != nil {
		return fmt.Errorf("enqueuing lifecycle event job: %w", err)
	}
	return nil
}
