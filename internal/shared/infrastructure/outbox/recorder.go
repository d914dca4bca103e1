package outbox

import (
	"context"

	"github.com/hiredeck/hiredeck/internal/shared/domain"
)

// Recorder stages domain events as outbox messages. It implements
// application.EventRecorder.
type Recorder struct {
	repo Repository
}

// NewRecorder creates an outbox-backed event recorder.
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Record converts events to outbox messages and stores them in one batch.
// When a transaction is carried in the context the messages join it.
func (r *Recorder) Record(ctx context.Context, events []domain.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]*Message, 0, len(events))
	for _, event := range events {
		msg, err := NewMessage(event)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	return r.repo.SaveBatch(ctx, msgs)
}
