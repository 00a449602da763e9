package eventsink

import (
	"context"

	"github.com/fgcplatform/identity/internal/domain/event"
	"github.com/fgcplatform/identity/internal/domain/repository"
)

// Multi fans each event out to every sink in order.
type Multi []repository.EventSink

func (m Multi) Publish(ctx context.Context, evt event.Event) {
	for _, s := range m {
		if s != nil {
			s.Publish(ctx, evt)
		}
	}
}

var _ repository.EventSink = (Multi)(nil)
