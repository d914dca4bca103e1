// Package queries contains candidate read operations.
package queries

import (
	"context"

	"github.com/hiredeck/hiredeck/internal/candidates/domain"
)

// ListCandidatesHandler lists registered candidates.
type ListCandidatesHandler struct {
	repo domain.Repository
}

// NewListCandidatesHandler creates a new handler.
func NewListCandidatesHandler(repo domain.Repository) *ListCandidatesHandler {
	return &ListCandidatesHandler{repo: repo}
}

// Handle returns all candidates.
func (h *ListCandidatesHandler) Handle(ctx context.Context) ([]*domain.Candidate, error) {
	return h.repo.List(ctx)
}
