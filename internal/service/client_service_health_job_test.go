package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/docchat/docchat/internal/logger"
	"github.com/docchat/docchat/internal/mock"
	"github.com/docchat/docchat/models"
)

func TestHealthJob_HealthyUntilFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockServerClient(ctrl)

	job := NewHealthJob(client, logger.Nop())
	assert.True(t, job.Healthy(), "job reports healthy before any check ran")
}

func TestHealthJob_TracksBackendState(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockServerClient(ctrl)

	var calls atomic.Int32
	client.EXPECT().
		Health(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (models.HealthResponse, error) {
			if calls.Add(1) <= 2 {
				return models.HealthResponse{}, errors.New("dial tcp: connection refused")
			}
			return models.HealthResponse{Status: "ok"}, nil
		}).
		MinTimes(3)

	job := NewHealthJob(client, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	require.Eventually(t, func() bool { return !job.Healthy() },
		time.Second, 2*time.Millisecond, "job notices the failing backend")
	require.Eventually(t, func() bool { return job.Healthy() },
		time.Second, 2*time.Millisecond, "job notices the recovery")
}

func TestHealthJob_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockServerClient(ctrl)
	client.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{Status: "ok"}, nil).AnyTimes()

	job := NewHealthJob(client, logger.Nop())

	job.Stop() // never started

	job.Start(context.Background(), time.Millisecond)
	job.Stop()
	job.Stop()
}
