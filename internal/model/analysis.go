package model

import (
	"errors"
	"time"
)

// DefaultEventTheme is assumed when a request does not name a theme.
const DefaultEventTheme = "technology, startups and innovation"

// AnalysisRequest asks whether an event is worth attending for a startup.
// EventName and StartupDescription are required; everything else is optional.
type AnalysisRequest struct {
	EventName    string `json:"eventName"`
	EventWebsite string `json:"eventWebsite,omitempty"`
	EventTheme   string `json:"eventTheme,omitempty"`

	StartupName        string `json:"startupName,omitempty"`
	StartupDescription string `json:"startupDescription"`
	StartupSector      string `json:"startupSector,omitempty"`
	StartupWebsite     string `json:"startupWebsite,omitempty"`
}

// Validate checks required fields. It must pass before any model call is made.
func (r *AnalysisRequest) Validate() error {
	if r.EventName == "" {
		return errors.New("missing required field 'eventName'")
	}
	if r.StartupDescription == "" {
		return errors.New("missing required field 'startupDescription'")
	}
	return nil
}

// Theme returns the requested event theme, falling back to the default.
func (r *AnalysisRequest) Theme() string {
	if r.EventTheme != "" {
		return r.EventTheme
	}
	return DefaultEventTheme
}

// AnalysisResult carries a bounded natural-language verdict.
type AnalysisResult struct {
	Analysis string `json:"analysis"`
}

// ErrorResult is the failure shape surfaced to callers.
type ErrorResult struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AnalysisCompleted is published after each finished analysis.
type AnalysisCompleted struct {
	ID          string    `json:"id"`
	EventName   string    `json:"event_name"`
	StartupName string    `json:"startup_name,omitempty"`
	Provider    string    `json:"provider"`
	RoundTrips  int       `json:"round_trips"`
	Truncated   bool      `json:"truncated"`
	Analysis    string    `json:"analysis"`
	CreatedAt   time.Time `json:"created_at"`
}
