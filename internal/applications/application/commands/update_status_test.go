package commands

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiredeck/hiredeck/internal/applications/domain"
	candidateDomain "github.com/hiredeck/hiredeck/internal/candidates/domain"
	sharedDomain "github.com/hiredeck/hiredeck/internal/shared/domain"
)

// passthroughUoW satisfies UnitOfWork without a real transaction.
type passthroughUoW struct{}

func (passthroughUoW) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (passthroughUoW) Commit(context.Context) error                       { return nil }
func (passthroughUoW) Rollback(context.Context) error                     { return nil }

// memoryApplicationRepo is an in-memory domain.Repository.
type memoryApplicationRepo struct {
	apps map[uuid.UUID]*domain.Application
}

func newMemoryApplicationRepo() *memoryApplicationRepo {
	return &memoryApplicationRepo{apps: make(map[uuid.UUID]*domain.Application)}
}

func (m *memoryApplicationRepo) Save(_ context.Context, app *domain.Application) error {
	m.apps[app.ID()] = app
	return nil
}

func (m *memoryApplicationRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Application, error) {
	return m.apps[id], nil
}

func (m *memoryApplicationRepo) FindByCandidate(_ context.Context, candidateID uuid.UUID) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, app := range m.apps {
		if app.CandidateID() == candidateID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (m *memoryApplicationRepo) List(_ context.Context, status domain.Status) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, app := range m.apps {
		if status == "" || app.Status() == status {
			out = append(out, app)
		}
	}
	return out, nil
}

// memoryCandidateRepo is an in-memory candidate repository.
type memoryCandidateRepo struct {
	candidates map[uuid.UUID]*candidateDomain.Candidate
}

func newMemoryCandidateRepo() *memoryCandidateRepo {
	return &memoryCandidateRepo{candidates: make(map[uuid.UUID]*candidateDomain.Candidate)}
}

func (m *memoryCandidateRepo) Save(_ context.Context, c *candidateDomain.Candidate) error {
	m.candidates[c.ID()] = c
	return nil
}

func (m *memoryCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (*candidateDomain.Candidate, error) {
	return m.candidates[id], nil
}

func (m *memoryCandidateRepo) FindByEmail(_ context.Context, email string) (*candidateDomain.Candidate, error) {
	for _, c := range m.candidates {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memoryCandidateRepo) List(_ context.Context) ([]*candidateDomain.Candidate, error) {
	var out []*candidateDomain.Candidate
	for _, c := range m.candidates {
		out = append(out, c)
	}
	return out, nil
}

// capturingRecorder collects recorded events.
type capturingRecorder struct {
	events []sharedDomain.DomainEvent
}

func (r *capturingRecorder) Record(_ context.Context, events []sharedDomain.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func TestSubmitApplicationHandler(t *testing.T) {
	candidates := newMemoryCandidateRepo()
	applications := newMemoryApplicationRepo()
	recorder := &capturingRecorder{}

	candidate, err := candidateDomain.NewCandidate("Ada", "ada@example.com", "")
	require.NoError(t, err)
	require.NoError(t, candidates.Save(context.Background(), candidate))

	handler := NewSubmitApplicationHandler(applications, candidates, passthroughUoW{}, recorder)

	app, err := handler.Handle(context.Background(), SubmitApplicationCommand{
		CandidateID: candidate.ID(),
		Position:    "Backend Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApplied, app.Status())

	require.Len(t, recorder.events, 1)
	assert.Equal(t, domain.EventTypeApplicationSubmitted, recorder.events[0].RoutingKey())
	assert.Empty(t, app.DomainEvents(), "events should be cleared after recording")
}

func TestSubmitApplicationHandler_UnknownCandidate(t *testing.T) {
	handler := NewSubmitApplicationHandler(
		newMemoryApplicationRepo(), newMemoryCandidateRepo(), passthroughUoW{}, &capturingRecorder{},
	)

	_, err := handler.Handle(context.Background(), SubmitApplicationCommand{
		CandidateID: uuid.New(),
		Position:    "Backend Engineer",
	})
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestUpdateStatusHandler(t *testing.T) {
	applications := newMemoryApplicationRepo()
	recorder := &capturingRecorder{}

	app, err := domain.NewApplication(uuid.New(), "Backend Engineer")
	require.NoError(t, err)
	app.ClearDomainEvents()
	require.NoError(t, applications.Save(context.Background(), app))

	handler := NewUpdateStatusHandler(applications, passthroughUoW{}, recorder)

	updated, err := handler.Handle(context.Background(), UpdateStatusCommand{
		ApplicationID: app.ID(),
		Target:        domain.StatusInterview,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInterview, updated.Status())
	require.Len(t, recorder.events, 1)
}

func TestUpdateStatusHandler_NotFound(t *testing.T) {
	handler := NewUpdateStatusHandler(newMemoryApplicationRepo(), passthroughUoW{}, &capturingRecorder{})

	_, err := handler.Handle(context.Background(), UpdateStatusCommand{
		ApplicationID: uuid.New(),
		Target:        domain.StatusInterview,
	})
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestAdvanceAndRejectHandlers(t *testing.T) {
	applications := newMemoryApplicationRepo()
	recorder := &capturingRecorder{}

	app, err := domain.NewApplication(uuid.New(), "Backend Engineer")
	require.NoError(t, err)
	app.ClearDomainEvents()
	require.NoError(t, applications.Save(context.Background(), app))

	advance := NewAdvanceApplicationHandler(applications, passthroughUoW{}, recorder)
	advanced, err := advance.Handle(context.Background(), app.ID())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScreening, advanced.Status())

	reject := NewRejectApplicationHandler(applications, passthroughUoW{}, recorder)
	rejected, err := reject.Handle(context.Background(), app.ID())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status())

	// terminal: further advancement fails
	_, err = advance.Handle(context.Background(), app.ID())
	assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
}
