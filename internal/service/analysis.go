// Package service provides business logic for the event advisor platform.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventmatch-ai/event-advisor/internal/agent"
	"github.com/eventmatch-ai/event-advisor/internal/llm"
	"github.com/eventmatch-ai/event-advisor/internal/model"
	"github.com/eventmatch-ai/event-advisor/internal/store"
	"github.com/eventmatch-ai/event-advisor/pkg/logger"
	"github.com/eventmatch-ai/event-advisor/pkg/metrics"
)

// ErrInvalidRequest marks validation failures detected before any model call.
var ErrInvalidRequest = errors.New("invalid analysis request")

// Publisher publishes completed analyses for downstream consumers.
type Publisher interface {
	PublishCompleted(ctx context.Context, rec *model.AnalysisCompleted) error
}

// AnalysisService runs the tool-calling conversation that judges whether an
// event is worth attending for a startup.
type AnalysisService struct {
	client     llm.Client
	registry   *agent.Registry
	candidates *agent.CandidateLister
	dispatcher *agent.Dispatcher
	publisher  Publisher // may be nil when eventing is disabled

	maxLength     int
	maxRoundTrips int
	logger        *logger.Logger
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(
	client llm.Client,
	registry *agent.Registry,
	events store.EventStore,
	publisher Publisher,
	maxLength, maxRoundTrips int,
	log *logger.Logger,
) *AnalysisService {
	return &AnalysisService{
		client:        client,
		registry:      registry,
		candidates:    agent.NewCandidateLister(events, log),
		dispatcher:    agent.NewDispatcher(registry, log),
		publisher:     publisher,
		maxLength:     maxLength,
		maxRoundTrips: maxRoundTrips,
		logger:        log,
	}
}

// Analyze validates the request, drives the conversation loop until the model
// converges to text (or fails), and returns the bounded verdict.
func (s *AnalysisService) Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error())
	}

	start := time.Now()

	candidateList := s.candidates.Render(ctx, req.EventName)
	prompt := agent.BuildPrompt(req, candidateList)

	session := agent.NewSession(s.client, s.registry.Specs(), s.maxRoundTrips)
	if err := session.Start(ctx, prompt); err != nil {
		return nil, s.fail(req, session.Outcome(), start, err)
	}

	for session.State() == agent.StateToolCallsPending {
		results := s.dispatcher.Execute(ctx, session.PendingCalls())
		if err := session.SubmitToolResults(ctx, results); err != nil {
			return nil, s.fail(req, session.Outcome(), start, err)
		}
	}

	outcome := session.Outcome()
	analysis, truncated, err := agent.Finalize(outcome, s.maxLength)
	if err != nil {
		return nil, s.fail(req, outcome, start, err)
	}

	if truncated {
		metrics.TruncationsTotal.Inc()
	}

	metrics.RecordAnalysis(s.client.Name(), "success", time.Since(start).Seconds(), outcome.RoundTrips)
	s.logger.Info("analysis completed",
		zap.String("event", req.EventName),
		zap.Int("round_trips", outcome.RoundTrips),
		zap.Bool("truncated", truncated),
	)

	s.publishCompleted(ctx, req, analysis, outcome.RoundTrips, truncated)

	return &model.AnalysisResult{Analysis: analysis}, nil
}

func (s *AnalysisService) fail(req *model.AnalysisRequest, o agent.Outcome, start time.Time, err error) error {
	metrics.RecordAnalysis(s.client.Name(), "failure", time.Since(start).Seconds(), o.RoundTrips)
	s.logger.Error("analysis failed",
		zap.String("event", req.EventName),
		zap.Int("round_trips", o.RoundTrips),
		zap.Error(err),
	)
	return err
}

// publishCompleted emits the completion record. Failures are logged and
// counted; they never affect the caller's result.
func (s *AnalysisService) publishCompleted(ctx context.Context, req *model.AnalysisRequest, analysis string, roundTrips int, truncated bool) {
	if s.publisher == nil {
		return
	}

	rec := &model.AnalysisCompleted{
		ID:          uuid.Must(uuid.NewV7()).String(),
		EventName:   req.EventName,
		StartupName: req.StartupName,
		Provider:    s.client.Name(),
		RoundTrips:  roundTrips,
		Truncated:   truncated,
		Analysis:    analysis,
		CreatedAt:   time.Now(),
	}

	if err := s.publisher.PublishCompleted(ctx, rec); err != nil {
		metrics.PublishFailuresTotal.WithLabelValues("analysis.completed").Inc()
		s.logger.Warn("failed to publish analysis record", zap.Error(err))
	}
}
