// Package application holds the interview scheduling ports shared by its
// commands and services.
package application

import (
	"context"
	"time"
)

// AdvisoryLocker serializes scheduling attempts for the same application.
// Locking is advisory: it narrows the double-booking window under concurrent
// access but deliberately does not deduplicate interviews, since repeat
// rounds at the same time are permitted.
type AdvisoryLocker interface {
	// Acquire takes the lock for key, returning a release function. When the
	// lock is held elsewhere, Acquire returns an error.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// NoopLocker performs no locking. Used when Redis is not configured,
// preserving the uncoordinated behavior.
type NoopLocker struct{}

// NewNoopLocker creates a locker that never blocks.
func NewNoopLocker() *NoopLocker {
	return &NoopLocker{}
}

// Acquire always succeeds and releases nothing.
func (l *NoopLocker) Acquire(_ context.Context, _ string, _ time.Duration) (func(), error) {
	return func() {}, nil
}
