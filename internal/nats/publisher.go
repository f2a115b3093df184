package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/eventmatch-ai/event-advisor/internal/model"
)

const (
	// StreamName is the name of the analyses stream.
	StreamName = "ANALYSES"

	// SubjectCompleted carries completed analysis records.
	SubjectCompleted = "analysis.completed"
)

// Publisher publishes analysis lifecycle records to JetStream so downstream
// consumers (notifications, billing, audit) can react without coupling to
// the request path.
type Publisher struct {
	client *Client
}

// NewPublisher creates a publisher over an established client.
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// EnsureStream ensures the analyses stream exists with proper configuration.
func (p *Publisher) EnsureStream(ctx context.Context) error {
	js := p.client.JetStream()

	// Check if stream exists
	if _, err := js.Stream(ctx, StreamName); err == nil {
		return nil
	}

	_, err := js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{"analysis.>"},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      90 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Compression: jetstream.S2Compression,
		Description: "Completed event analyses",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	return nil
}

// PublishCompleted publishes one completed analysis record.
func (p *Publisher) PublishCompleted(ctx context.Context, rec *model.AnalysisCompleted) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis record: %w", err)
	}

	if _, err := p.client.JetStream().Publish(ctx, SubjectCompleted, data); err != nil {
		return fmt.Errorf("failed to publish analysis record: %w", err)
	}

	return nil
}
