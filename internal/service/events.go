package service

import (
	"context"

	"github.com/eventmatch-ai/event-advisor/internal/model"
	"github.com/eventmatch-ai/event-advisor/internal/store"
	"github.com/eventmatch-ai/event-advisor/pkg/logger"
)

// EventService handles event listing.
type EventService struct {
	store  store.EventStore
	logger *logger.Logger
}

// NewEventService creates a new event service.
func NewEventService(s store.EventStore, log *logger.Logger) *EventService {
	return &EventService{store: s, logger: log}
}

// List returns events matching the filter.
func (s *EventService) List(ctx context.Context, f model.EventFilter) (*model.ListEventsResponse, error) {
	events, err := s.store.ListEvents(ctx, f)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.Event{}
	}
	return &model.ListEventsResponse{
		Events: events,
		Total:  len(events),
	}, nil
}
