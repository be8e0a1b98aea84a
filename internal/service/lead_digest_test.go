package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/nextstop-api/internal/repository"
)

func TestNewLeadDigestRejectsBadSchedule(t *testing.T) {
	_, err := NewLeadDigest(nil, "every now and then", nil)
	require.Error(t, err)
}

func TestLeadDigestCountsWindow(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := repository.NewMemoryStore()
	inquiries := NewInquiryService(store, nil, &recordingNotifier{}, nil, nil)
	digest, err := NewLeadDigest(inquiries, "@daily", zap.New(core))
	require.NoError(t, err)

	_, err = inquiries.Submit(context.Background(), validInquiryRequest())
	require.NoError(t, err)

	count, err := digest.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	digest.now = func() time.Time { return time.Now().Add(time.Minute) }
	count, err = digest.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	entries := logs.FilterMessage("lead digest").All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].ContextMap()["inquiries"])
}

type brokenCounter struct{}

func (brokenCounter) CountSince(context.Context, time.Time) (int, error) {
	return 0, errors.New("db down")
}

func TestLeadDigestKeepsWindowOnFailure(t *testing.T) {
	digest, err := NewLeadDigest(brokenCounter{}, "0 9 * * *", nil)
	require.NoError(t, err)
	digest.Start()
	defer digest.Stop()

	before := digest.lastRun
	_, err = digest.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, before, digest.lastRun)
}
