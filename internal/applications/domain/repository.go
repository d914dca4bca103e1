package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for applications.
type Repository interface {
	Save(ctx context.Context, application *Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*Application, error)
	FindByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*Application, error)
	List(ctx context.Context, status Status) ([]*Application, error)
}
