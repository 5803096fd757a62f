package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SchedulerSuite struct {
	suite.Suite
	logger *slog.Logger
}

func (s *SchedulerSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}

type countingJob struct {
	runs       atomic.Int32
	noDeadline atomic.Bool
	err        error
}

func (c *countingJob) job(name string, interval time.Duration) Job {
	return Job{
		Name:     name,
		Interval: interval,
		Run: func(ctx context.Context) error {
			c.runs.Add(1)
			if _, ok := ctx.Deadline(); !ok {
				c.noDeadline.Store(true)
			}
			return c.err
		},
	}
}

func (s *SchedulerSuite) start(sched *Scheduler) (context.CancelFunc, <-chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Start(ctx) }()
	s.T().Cleanup(cancel)
	return cancel, done
}

func (s *SchedulerSuite) TestStart_RunsEveryJobImmediatelyAndOnTick() {
	enrich := &countingJob{}
	feeds := &countingJob{}
	sched := New(time.Second, s.logger,
		enrich.job("enrichment", 20*time.Millisecond),
		feeds.job("feeds", time.Hour),
	)

	cancel, done := s.start(sched)

	s.Require().Eventually(func() bool { return enrich.runs.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	s.ErrorIs(<-done, context.Canceled)
	s.Equal(int32(1), feeds.runs.Load())
	s.False(enrich.noDeadline.Load())
	s.False(feeds.noDeadline.Load())
}

func (s *SchedulerSuite) TestStart_KeepsRunningAfterFailure() {
	failing := &countingJob{err: errors.New("database down")}
	sched := New(time.Second, s.logger, failing.job("enrichment", 10*time.Millisecond))

	s.start(sched)

	s.Require().Eventually(func() bool { return failing.runs.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func (s *SchedulerSuite) TestStart_SkipsDisabledJobs() {
	disabled := &countingJob{}
	enabled := &countingJob{}
	sched := New(time.Second, s.logger,
		disabled.job("disabled", 0),
		enabled.job("enabled", time.Hour),
	)

	cancel, done := s.start(sched)
	s.Require().Eventually(func() bool { return enabled.runs.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	s.ErrorIs(<-done, context.Canceled)
	s.Zero(disabled.runs.Load())
}

func TestRun_AppliesTimeout(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	sched := New(20*time.Millisecond, logger)

	var err error
	ok := sched.run(context.Background(), Job{
		Name: "slow",
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			err = ctx.Err()
			return err
		},
	}, logger)

	require.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStart_ReturnsWithNoJobs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, New(time.Second, logger).Start(ctx), context.Canceled)
}
