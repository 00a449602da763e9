package eventsink

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fgcplatform/identity/internal/domain/event"
	"github.com/fgcplatform/identity/internal/domain/repository"
)

// LogSink writes each drained domain event to the structured log. It is the
// always-available fallback sink.
type LogSink struct {
	Logger *logrus.Logger
}

func NewLogSink(logger *logrus.Logger) *LogSink {
	return &LogSink{Logger: logger}
}

func (s *LogSink) Publish(_ context.Context, evt event.Event) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithFields(logrus.Fields{
		"event_id":    evt.EventID(),
		"event":       evt.Name(),
		"occurred_at": evt.OccurredAt(),
	}).Info("domain event")
}

var _ repository.EventSink = (*LogSink)(nil)
