// Package domain holds the candidate entity for the hiring pipeline.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	sharedDomain "github.com/hiredeck/hiredeck/internal/shared/domain"
)

var (
	ErrEmptyName    = errors.New("candidate name cannot be empty")
	ErrInvalidEmail = errors.New("candidate email is invalid")
)

// Candidate represents a person applying through the portal.
type Candidate struct {
	sharedDomain.BaseEntity
	name  string
	email string
	phone string
}

// NewCandidate creates a new candidate.
func NewCandidate(name, email, phone string) (*Candidate, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Candidate{
		BaseEntity: sharedDomain.NewBaseEntity(),
		name:       name,
		email:      email,
		phone:      strings.TrimSpace(phone),
	}, nil
}

// Getters
func (c *Candidate) Name() string  { return c.name }
func (c *Candidate) Email() string { return c.email }
func (c *Candidate) Phone() string { return c.phone }

// UpdateContact replaces the candidate's contact details.
func (c *Candidate) UpdateContact(email, phone string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	c.email = email
	c.phone = strings.TrimSpace(phone)
	c.Touch()
	return nil
}

// RehydrateCandidate recreates a candidate from persisted state.
func RehydrateCandidate(
	id uuid.UUID,
	name, email, phone string,
	createdAt, updatedAt time.Time,
) *Candidate {
	return &Candidate{
		BaseEntity: sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		name:       name,
		email:      email,
		phone:      phone,
	}
}
