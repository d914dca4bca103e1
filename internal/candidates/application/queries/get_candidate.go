package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/candidates/domain"
)

// ErrCandidateNotFound is returned when the requested candidate does not exist.
var ErrCandidateNotFound = errors.New("candidate not found")

// GetCandidateHandler retrieves a single candidate by ID.
type GetCandidateHandler struct {
	repo domain.Repository
}

// NewGetCandidateHandler creates a new handler.
func NewGetCandidateHandler(repo domain.Repository) *GetCandidateHandler {
	return &GetCandidateHandler{repo: repo}
}

// Handle returns the candidate or ErrCandidateNotFound.
func (h *GetCandidateHandler) Handle(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	candidate, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}
	return candidate, nil
}
