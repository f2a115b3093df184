package middleware

import (
	"errors"
	"unicode/utf8"
)

// ValidateAnalysisInput checks the free-text fields of an analysis request
// before it reaches the model.
func ValidateAnalysisInput(eventName, startupDescription string) error {
	if eventName == "" {
		return errors.New("eventName cannot be empty")
	}
	if len(eventName) > 256 {
		return errors.New("eventName exceeds maximum length")
	}
	if startupDescription == "" {
		return errors.New("startupDescription cannot be empty")
	}
	if len(startupDescription) > 10000 {
		return errors.New("startupDescription exceeds maximum length")
	}
	if !utf8.ValidString(eventName) || !utf8.ValidString(startupDescription) {
		return errors.New("request fields must be valid UTF-8")
	}
	return nil
}

// ValidateLocation validates a location filter value.
func ValidateLocation(location string) error {
	if len(location) > 128 {
		return errors.New("location filter exceeds maximum length")
	}
	if !utf8.ValidString(location) {
		return errors.New("location filter must be valid UTF-8")
	}
	return nil
}
