package agent

import (
	"fmt"
	"strings"

	"context"

	"go.uber.org/zap"

	"github.com/eventmatch-ai/event-advisor/internal/model"
	"github.com/eventmatch-ai/event-advisor/internal/store"
	"github.com/eventmatch-ai/event-advisor/pkg/logger"
)

// NoAlternativesSentinel is rendered when no candidate events are available,
// either because the pool is empty or because the store query failed.
const NoAlternativesSentinel = "no alternatives available"

const candidateDateLayout = "Jan 2, 2006"

// CandidateLister renders the pool of alternative events into a compact
// textual list for inclusion in the prompt.
type CandidateLister struct {
	store  store.EventStore
	logger *logger.Logger
}

// NewCandidateLister creates a new candidate lister.
func NewCandidateLister(s store.EventStore, log *logger.Logger) *CandidateLister {
	return &CandidateLister{store: s, logger: log}
}

// Render queries all known events except the one under evaluation and renders
// each as a single line. A store failure degrades to the empty-pool sentinel
// with a warning; it never aborts the analysis.
func (c *CandidateLister) Render(ctx context.Context, excludeName string) string {
	events, err := c.store.ListEvents(ctx, model.EventFilter{ExcludeName: excludeName})
	if err != nil {
		c.logger.Warn("candidate pool unavailable, proceeding without alternatives",
			zap.String("exclude", excludeName),
			zap.Error(err),
		)
		return NoAlternativesSentinel
	}

	return RenderCandidates(events)
}

// RenderCandidates formats events one per line:
// name, description, location, startDate–endDate.
func RenderCandidates(events []model.Event) string {
	if len(events) == 0 {
		return NoAlternativesSentinel
	}

	var b strings.Builder
	for i, e := range events {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s, %s, %s, %s–%s",
			e.Name,
			e.Description,
			e.Location,
			e.StartDate.Format(candidateDateLayout),
			e.EndDate.Format(candidateDateLayout),
		)
	}
	return b.String()
}
