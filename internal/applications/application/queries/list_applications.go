// Package queries contains application pipeline read operations.
package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/hiredeck/hiredeck/internal/applications/domain"
)

// ListApplicationsHandler lists applications, optionally by pipeline stage.
type ListApplicationsHandler struct {
	repo domain.Repository
}

// NewListApplicationsHandler creates a new handler.
func NewListApplicationsHandler(repo domain.Repository) *ListApplicationsHandler {
	return &ListApplicationsHandler{repo: repo}
}

// Handle returns applications filtered by status; empty status returns all.
func (h *ListApplicationsHandler) Handle(ctx context.Context, status domain.Status) ([]*domain.Application, error) {
	return h.repo.List(ctx, status)
}

// CandidateApplicationsHandler lists a candidate's applications.
type CandidateApplicationsHandler struct {
	repo domain.Repository
}

// NewCandidateApplicationsHandler creates a new handler.
func NewCandidateApplicationsHandler(repo domain.Repository) *CandidateApplicationsHandler {
	return &CandidateApplicationsHandler{repo: repo}
}

// Handle returns all applications submitted by the candidate.
func (h *CandidateApplicationsHandler) Handle(ctx context.Context, candidateID uuid.UUID) ([]*domain.Application, error) {
	return h.repo.FindByCandidate(ctx, candidateID)
}
