package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	mu       sync.Mutex
	messages []*Message
	nextID   int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{nextID: 1}
}

func (r *memoryRepo) Save(ctx context.Context, msg *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = r.nextID
	r.nextID++
	r.messages = append(r.messages, msg)
	return nil
}

func (r *memoryRepo) SaveBatch(ctx context.Context, msgs []*Message) error {
	for _, msg := range msgs {
		if err := r.Save(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func (r *memoryRepo) GetUnpublished(ctx context.Context, limit int) ([]*Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Message, 0)
	for _, msg := range r.messages {
		if msg.PublishedAt == nil && msg.DeadLetteredAt == nil && len(out) < limit {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (r *memoryRepo) MarkPublished(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, msg := range r.messages {
		if msg.ID == id {
			msg.PublishedAt = &now
		}
	}
	return nil
}

func (r *memoryRepo) MarkFailed(ctx context.Context, id int64, errMsg string, nextRetryAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range r.messages {
		if msg.ID == id {
			msg.RetryCount++
			msg.LastError = &errMsg
			msg.NextRetryAt = &nextRetryAt
		}
	}
	return nil
}

func (r *memoryRepo) MarkDead(ctx context.Context, id int64, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, msg := range r.messages {
		if msg.ID == id {
			msg.DeadLetteredAt = &now
			msg.DeadLetterReason = &reason
		}
	}
	return nil
}

func (r *memoryRepo) DeleteOld(ctx context.Context, olderThanDays int) (int64, error) {
	return 0, nil
}

type capturingPublisher struct {
	mu        sync.Mutex
	published []string
	failWith  error
}

func (p *capturingPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, routingKey)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func testMessage(t *testing.T) *Message {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"kind": "test"})
	require.NoError(t, err)
	return &Message{
		EventID:       uuid.New(),
		AggregateType: "interview",
		AggregateID:   uuid.New(),
		EventType:     "interviews.interview.scheduled",
		RoutingKey:    "interviews.interview.scheduled",
		Payload:       payload,
		CreatedAt:     time.Now(),
	}
}

func TestProcessor_PublishesAndMarks(t *testing.T) {
	repo := newMemoryRepo()
	pub := &capturingPublisher{}
	proc := NewProcessor(repo, pub, DefaultProcessorConfig(), nil)

	msg := testMessage(t)
	require.NoError(t, repo.Save(context.Background(), msg))

	require.NoError(t, proc.ProcessOnce(context.Background()))

	assert.Equal(t, []string{"interviews.interview.scheduled"}, pub.published)
	assert.True(t, msg.IsPublished())
}

func TestProcessor_RetriesOnFailure(t *testing.T) {
	repo := newMemoryRepo()
	pub := &capturingPublisher{failWith: errors.New("broker down")}
	proc := NewProcessor(repo, pub, DefaultProcessorConfig(), nil)

	msg := testMessage(t)
	require.NoError(t, repo.Save(context.Background(), msg))

	require.NoError(t, proc.ProcessOnce(context.Background()))

	assert.False(t, msg.IsPublished())
	assert.Equal(t, 1, msg.RetryCount)
	require.NotNil(t, msg.LastError)
	assert.Equal(t, "broker down", *msg.LastError)
	assert.Nil(t, msg.DeadLetteredAt)
}

func TestProcessor_DeadLettersAfterMaxRetries(t *testing.T) {
	repo := newMemoryRepo()
	pub := &capturingPublisher{failWith: errors.New("broker down")}
	cfg := DefaultProcessorConfig()
	cfg.MaxRetries = 2
	proc := NewProcessor(repo, pub, cfg, nil)

	msg := testMessage(t)
	msg.RetryCount = 1
	require.NoError(t, repo.Save(context.Background(), msg))

	require.NoError(t, proc.ProcessOnce(context.Background()))

	require.NotNil(t, msg.DeadLetteredAt)
	require.NotNil(t, msg.DeadLetterReason)
	assert.Equal(t, "broker down", *msg.DeadLetterReason)
}

func TestProcessor_StartStop(t *testing.T) {
	repo := newMemoryRepo()
	pub := &capturingPublisher{}
	cfg := DefaultProcessorConfig()
	cfg.PollInterval = 10 * time.Millisecond
	proc := NewProcessor(repo, pub, cfg, nil)

	require.NoError(t, proc.Start(context.Background()))
	assert.True(t, proc.IsRunning())

	proc.Stop()
	assert.False(t, proc.IsRunning())
}

func TestRetryBackoff_Caps(t *testing.T) {
	proc := NewProcessor(newMemoryRepo(), &capturingPublisher{}, ProcessorConfig{
		RetryBackoffBase: time.Second,
		RetryBackoffMax:  8 * time.Second,
	}, nil)

	assert.Equal(t, time.Second, proc.retryBackoff(1))
	assert.Equal(t, 2*time.Second, proc.retryBackoff(2))
	assert.Equal(t, 4*time.Second, proc.retryBackoff(3))
	assert.Equal(t, 8*time.Second, proc.retryBackoff(4))
	assert.Equal(t, 8*time.Second, proc.retryBackoff(10))
}
