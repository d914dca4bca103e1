// Package commands contains candidate write operations.
package commands

import (
	"context"
	"errors"

	"github.com/hiredeck/hiredeck/internal/candidates/domain"
)

// ErrCandidateExists is returned when a candidate with the email already exists.
var ErrCandidateExists = errors.New("candidate with this email already exists")

// AddCandidateCommand represents a request to register a candidate.
type AddCandidateCommand struct {
	Name  string
	Email string
	Phone string
}

// AddCandidateHandler handles the AddCandidateCommand.
type AddCandidateHandler struct {
	repo domain.Repository
}

// NewAddCandidateHandler creates a new handler.
func NewAddCandidateHandler(repo domain.Repository) *AddCandidateHandler {
	return &AddCandidateHandler{repo: repo}
}

// Handle executes the command.
func (h *AddCandidateHandler) Handle(ctx context.Context, cmd AddCandidateCommand) (*domain.Candidate, error) {
	existing, err := h.repo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCandidateExists
	}

	candidate, err := domain.NewCandidate(cmd.Name, cmd.Email, cmd.Phone)
	if err != nil {
		return nil, err
	}

	if err := h.repo.Save(ctx, candidate); err != nil {
		return nil, err
	}

	return candidate, nil
}
