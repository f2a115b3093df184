// Package model defines data structures for the event advisor platform.
package model

import (
	"time"
)

// Event represents a tech/startup event known to the platform.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Website     string    `json:"website"`
	Longitude   float64   `json:"longitude,omitempty"`
	Latitude    float64   `json:"latitude,omitempty"`
}

// EventFilter narrows an event listing query. Zero values mean "no filter".
type EventFilter struct {
	// StartAfter keeps events starting at or after this instant.
	StartAfter *time.Time
	// EndBefore keeps events ending at or before this instant.
	EndBefore *time.Time
	// Location is a case-insensitive substring match on the event location.
	Location string
	// ExcludeName drops the event with this exact name from the result.
	ExcludeName string
}

// ListEventsResponse is the response for listing events.
type ListEventsResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}
