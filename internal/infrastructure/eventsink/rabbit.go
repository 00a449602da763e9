package eventsink

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fgcplatform/identity/internal/domain/event"
	"github.com/fgcplatform/identity/internal/domain/repository"
	"github.com/fgcplatform/identity/pkg/helpers"
)

// Envelope is the JSON shape published to the event queue. Payload carries
// the event-specific fields via the event struct's own tags.
type Envelope struct {
	EventID    string      `json:"event_id"`
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// RabbitSink publishes domain events to a durable RabbitMQ queue.
// Fire-and-forget: publish failures are logged, never propagated.
type RabbitSink struct {
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewRabbitSink(pub *helpers.RabbitPublisher, logger *logrus.Logger) *RabbitSink {
	return &RabbitSink{Pub: pub, Logger: logger}
}

func (s *RabbitSink) Publish(ctx context.Context, evt event.Event) {
	if s.Pub == nil {
		return
	}
	env := Envelope{
		EventID:    evt.EventID().String(),
		Event:      evt.Name(),
		OccurredAt: evt.OccurredAt(),
		Payload:    evt,
	}
	if err := s.Pub.PublishJSON(ctx, env); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event", evt.Name()).Warn("event publish failed")
	}
}

var _ repository.EventSink = (*RabbitSink)(nil)
