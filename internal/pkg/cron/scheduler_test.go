package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsJobImmediately(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32

	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestSchedulerTicks(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32

	s.AddJob("count", 20*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 10*time.Millisecond)
}

func TestSchedulerStopWaitsForJobs(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32

	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	s.Start()
	s.Stop()

	after := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestSchedulerContinuesAfterJobError(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32

	s.AddJob("failing", 20*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return context.DeadlineExceeded
	})
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 10*time.Millisecond)
}
