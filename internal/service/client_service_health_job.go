package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/docchat/docchat/internal/api"
	"github.com/docchat/docchat/internal/logger"
)

type healthJob struct {
	client api.ServerClient
	logger *logger.Logger

	healthy atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHealthJob creates a healthJob that pings the backend's health endpoint
// on a ticker. The job is idle until Start is called; Healthy reports true
// until a check has failed.
func NewHealthJob(client api.ServerClient, log *logger.Logger) HealthJob {
	j := &healthJob{client: client, logger: log}
	j.healthy.Store(true)
	return j
}

// Start implements [HealthJob]. It stops any previously running job, then
// launches a background goroutine that performs a check every interval. If
// interval is zero or negative it defaults to one minute. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *healthJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

// Stop implements [HealthJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *healthJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Healthy implements [HealthJob].
func (j *healthJob) Healthy() bool {
	return j.healthy.Load()
}

func (j *healthJob) check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := j.client.Health(checkCtx)
	if err != nil {
		if j.healthy.Swap(false) {
			j.logger.Warn().Err(err).Msg("backend became unreachable")
		}
		return
	}

	if !j.healthy.Swap(true) {
		j.logger.Info().Msg("backend reachable again")
	}
}
