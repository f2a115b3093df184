package agent

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Ellipsis is appended when the final text is cut to the length bound.
const Ellipsis = "..."

// ErrNotFinal is returned when finalizing a session that never reached a
// terminal state with usable text.
var ErrNotFinal = errors.New("agent: session did not produce a final answer")

// Finalize validates that the session ended with usable text and applies the
// length bound. On failure it returns an error carrying the failure reason;
// it never returns an empty success.
func Finalize(o Outcome, maxLength int) (string, bool, error) {
	switch o.State {
	case StateFinal:
		if o.Text == "" {
			return "", false, ErrNotFinal
		}
		bounded := Truncate(o.Text, maxLength)
		return bounded, bounded != o.Text, nil
	case StateFailed:
		return "", false, fmt.Errorf("agent: analysis failed: %s", o.FailureReason)
	default:
		return "", false, ErrNotFinal
	}
}

// Truncate applies a hard character cut to maxLength-3 and appends an
// ellipsis when s exceeds maxLength characters. The bound counts runes, not
// bytes, so multibyte text is never cut mid-rune. It is a no-op for bounded
// input, so truncation is idempotent. maxLength <= 0 disables the bound.
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 || utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	// Bounds too small to hold the ellipsis get a plain cut.
	if maxLength <= len(Ellipsis) {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-len(Ellipsis)]) + Ellipsis
}
