package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExecuteJobSkipsWhileRunning(t *testing.T) {
	s := NewScheduler()
	defer s.cancel()

	var calls atomic.Int32
	release := make(chan struct{})
	job := &Job{
		Name:     "slow_job",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			calls.Add(1)
			<-release
			return nil
		},
	}

	done := make(chan struct{})
	go func() {
		s.executeJob(job)
		close(done)
	}()

	// Wait until the first tick is inside the job body.
	for calls.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	// An overlapping tick must be skipped, not queued.
	s.executeJob(job)
	assert.Equal(t, int32(1), calls.Load())

	close(release)
	<-done

	// Once the first tick finishes the job runs again.
	s.executeJob(job)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExecuteJobBoundsTickDuration(t *testing.T) {
	s := NewScheduler()
	defer s.cancel()

	var deadlineSet bool
	job := &Job{
		Name:     "deadline_job",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			_, deadlineSet = ctx.Deadline()
			return nil
		},
	}

	s.executeJob(job)
	assert.True(t, deadlineSet, "job context should carry a deadline")
}

func TestRunOnce(t *testing.T) {
	s := NewScheduler()
	defer s.cancel()

	var calls atomic.Int32
	s.AddJob("job_a", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})
	s.AddJob("job_b", time.Hour, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, int32(2), calls.Load())
}
