package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for candidates.
type Repository interface {
	// Save persists a candidate.
	Save(ctx context.Context, candidate *Candidate) error

	// FindByID retrieves a candidate by ID. Returns nil when not found.
	FindByID(ctx context.Context, id uuid.UUID) (*Candidate, error)

	// FindByEmail retrieves a candidate by email. Returns nil when not found.
	FindByEmail(ctx context.Context, email string) (*Candidate, error)

	// List retrieves all candidates ordered by creation time.
	List(ctx context.Context) ([]*Candidate, error)
}
