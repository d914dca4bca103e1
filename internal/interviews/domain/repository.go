package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for interviews.
type Repository interface {
	Save(ctx context.Context, interview *Interview) error
	FindByID(ctx context.Context, id uuid.UUID) (*Interview, error)
	FindByApplication(ctx context.Context, applicationID uuid.UUID) ([]*Interview, error)
	// ListScheduledBetween returns scheduled interviews whose start falls in [from, to).
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*Interview, error)
}
