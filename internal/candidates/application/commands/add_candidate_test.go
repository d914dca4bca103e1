package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiredeck/hiredeck/internal/candidates/domain"
)

type mockCandidateRepo struct {
	mock.Mock
}

func (m *mockCandidateRepo) Save(ctx context.Context, candidate *domain.Candidate) error {
	args := m.Called(ctx, candidate)
	return args.Error(0)
}

func (m *mockCandidateRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *mockCandidateRepo) FindByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *mockCandidateRepo) List(ctx context.Context) ([]*domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Candidate), args.Error(1)
}

func TestAddCandidateHandler_Success(t *testing.T) {
	repo := new(mockCandidateRepo)
	handler := NewAddCandidateHandler(repo)

	repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)

	candidate, err := handler.Handle(context.Background(), AddCandidateCommand{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, "Ada Lovelace", candidate.Name())

	repo.AssertExpectations(t)
}

func TestAddCandidateHandler_DuplicateEmail(t *testing.T) {
	repo := new(mockCandidateRepo)
	handler := NewAddCandidateHandler(repo)

	existing, err := domain.NewCandidate("Ada", "ada@example.com", "")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(existing, nil)

	_, err = handler.Handle(context.Background(), AddCandidateCommand{
		Name:  "Ada Again",
		Email: "ada@example.com",
	})

	assert.ErrorIs(t, err, ErrCandidateExists)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddCandidateHandler_InvalidInput(t *testing.T) {
	repo := new(mockCandidateRepo)
	handler := NewAddCandidateHandler(repo)

	repo.On("FindByEmail", mock.Anything, "bogus").Return(nil, nil)

	_, err := handler.Handle(context.Background(), AddCandidateCommand{
		Name:  "Ada",
		Email: "bogus",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestAddCandidateHandler_RepoError(t *testing.T) {
	repo := new(mockCandidateRepo)
	handler := NewAddCandidateHandler(repo)

	repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, errors.New("database error"))

	_, err := handler.Handle(context.Background(), AddCandidateCommand{
		Name:  "Ada",
		Email: "ada@example.com",
	})

	assert.Error(t, err)
}
