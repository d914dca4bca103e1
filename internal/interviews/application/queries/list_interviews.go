// Package queries contains interview read operations.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/interviews/domain"
)

// ApplicationInterviewsHandler lists the interviews of an application.
type ApplicationInterviewsHandler struct {
	repo domain.Repository
}

// NewApplicationInterviewsHandler creates a new handler.
func NewApplicationInterviewsHandler(repo domain.Repository) *ApplicationInterviewsHandler {
	return &ApplicationInterviewsHandler{repo: repo}
}

// Handle returns all interviews for the application.
func (h *ApplicationInterviewsHandler) Handle(ctx context.Context, applicationID uuid.UUID) ([]*domain.Interview, error) {
	return h.repo.FindByApplication(ctx, applicationID)
}

// UpcomingInterviewsHandler lists scheduled interviews in a window.
type UpcomingInterviewsHandler struct {
	repo domain.Repository
}

// NewUpcomingInterviewsHandler creates a new handler.
func NewUpcomingInterviewsHandler(repo domain.Repository) *UpcomingInterviewsHandler {
	return &UpcomingInterviewsHandler{repo: repo}
}

// Handle returns scheduled interviews starting in [from, to).
func (h *UpcomingInterviewsHandler) Handle(ctx context.Context, from, to time.Time) ([]*domain.Interview, error) {
	return h.repo.ListScheduledBetween(ctx, from, to)
}
