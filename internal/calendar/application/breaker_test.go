package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyProvider struct {
	err   error
	calls int
}

func (f *flakyProvider) FreeBusy(_ context.Context, _, _ time.Time) ([]BusyPeriod, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []BusyPeriod{}, nil
}

func TestBreakerProvider_PassesThroughSuccess(t *testing.T) {
	provider := &flakyProvider{}
	breaker := NewBreakerProvider(provider, nil)

	_, err := breaker.FreeBusy(context.Background(), time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
}

func TestBreakerProvider_OpensAfterConsecutiveFailures(t *testing.T) {
	provider := &flakyProvider{err: errors.New("upstream down")}
	breaker := NewBreakerProvider(provider, nil)

	ctx := context.Background()
	for range 3 {
		_, err := breaker.FreeBusy(ctx, time.Now(), time.Now().Add(time.Hour))
		require.Error(t, err)
	}
	assert.Equal(t, 3, provider.calls)

	// breaker now open: the provider is no longer invoked
	_, err := breaker.FreeBusy(ctx, time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, provider.calls)
}

func TestBreakerProvider_NilDependenciesReportNotConnected(t *testing.T) {
	breaker := NewBreakerProvider(nil, nil)

	_, err := breaker.FreeBusy(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrNotConnected)

	_, err = breaker.CreateMeeting(context.Background(), MeetingRequest{})
	assert.ErrorIs(t, err, ErrNotConnected)
}
