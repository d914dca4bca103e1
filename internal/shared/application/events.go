package application

import (
	"context"

	"github.com/hiredeck/hiredeck/internal/shared/domain"
)

// EventRecorder stages domain events for delivery.
type EventRecorder interface {
	Record(ctx context.Context, events []domain.DomainEvent) error
}

// NoopEventRecorder discards all events. Used when no event transport is configured.
type NoopEventRecorder struct{}

// NewNoopEventRecorder creates a recorder that drops events.
func NewNoopEventRecorder() *NoopEventRecorder {
	return &NoopEventRecorder{}
}

// Record discards the events.
func (r *NoopEventRecorder) Record(_ context.Context, _ []domain.DomainEvent) error {
	return nil
}

// RecordAndClear stages an aggregate's uncommitted events and clears them on success.
func RecordAndClear(ctx context.Context, recorder EventRecorder, aggregate domain.AggregateRoot) error {
	events := aggregate.DomainEvents()
	if len(events) == 0 {
		return nil
	}
	if err := recorder.Record(ctx, events); err != nil {
		return err
	}
	aggregate.ClearDomainEvents()
	return nil
}
