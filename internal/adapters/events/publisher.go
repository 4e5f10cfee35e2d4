// Package events delivers vault domain events. Every event is wrapped in an
// Envelope carrying a unique id and the time it was published.
package events

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/bnema/stakevault/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Envelope struct {
	EventID    string           `json:"event_id"`
	EventType  domain.EventType `json:"event_type"`
	OccurredAt time.Time        `json:"occurred_at"`
	Data       domain.Event     `json:"data"`
}

func NewEnvelope(event domain.Event, at time.Time) Envelope {
	return Envelope{
		EventID:    uuid.NewString(),
		EventType:  event.EventType(),
		OccurredAt: at,
		Data:       event,
	}
}

// LogPublisher writes each event to the logger at info level.
type LogPublisher struct {
	logger zerolog.Logger
	clock  ports.Clock
}

func NewLogPublisher(logger zerolog.Logger, clock ports.Clock) *LogPublisher {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &LogPublisher{logger: logger, clock: clock}
}

func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	envelope := NewEnvelope(event, p.clock.Now())
	p.logger.Info().
		Str("event_id", envelope.EventID).
		Str("event_type", string(envelope.EventType)).
		Time("occurred_at", envelope.OccurredAt).
		Interface("data", envelope.Data).
		Msg("vault event")
	return nil
}

// Recorder keeps published envelopes in memory, in publish order.
type Recorder struct {
	mu        sync.Mutex
	clock     ports.Clock
	envelopes []Envelope
}

func NewRecorder(clock ports.Clock) *Recorder {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Recorder{clock: clock}
}

func (r *Recorder) Publish(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.envelopes = append(r.envelopes, NewEnvelope(event, r.clock.Now()))
	return nil
}

func (r *Recorder) Envelopes() []Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Envelope(nil), r.envelopes...)
}

// Types lists the recorded event types, in publish order.
func (r *Recorder) Types() []domain.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()

	types := make([]domain.EventType, 0, len(r.envelopes))
	for _, envelope := range r.envelopes {
		types = append(types, envelope.EventType)
	}
	return types
}

// Fanout publishes to every publisher and joins their errors.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, publisher := range f {
		if publisher == nil {
			continue
		}
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
