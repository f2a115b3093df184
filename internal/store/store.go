// Package store provides persistence for events.
package store

import (
	"context"

	"github.com/eventmatch-ai/event-advisor/internal/model"
)

// EventStore is the read-and-seed interface over the events table.
// The analysis path only ever reads from it.
type EventStore interface {
	// ListEvents returns events matching the filter, ordered by start date.
	ListEvents(ctx context.Context, f model.EventFilter) ([]model.Event, error)

	// Count returns the total number of stored events.
	Count(ctx context.Context) (int64, error)

	// Seed inserts the given events. Used once at startup when the table is empty.
	Seed(ctx context.Context, events []model.Event) error
}
