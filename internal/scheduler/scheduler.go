package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"gradeyour401k/internal/logger"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

type taskFn func(ctx context.Context) error

type Scheduler struct {
	scheduler gocron.Scheduler
	lg        *zap.SugaredLogger
}

func New(lg *zap.SugaredLogger) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{scheduler: scheduler, lg: lg}, nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) createJob(jobDefinition gocron.JobDefinition, name string, fn taskFn, startImmediately bool) error {
	opts := []gocron.JobOption{
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}

	if startImmediately {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := s.scheduler.NewJob(
		jobDefinition,
		gocron.NewTask(s.taskWithRecover(fn, name)),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", name, err)
	}

	return nil
}

func (s *Scheduler) NewIntervalJob(name string, fn taskFn, interval time.Duration, startImmediately bool) error {
	return s.createJob(gocron.DurationJob(interval), name, fn, startImmediately)
}

// NewCrontabJob takes a five field crontab evaluated in UTC
func (s *Scheduler) NewCrontabJob(name string, fn taskFn, crontab string, startImmediately bool) error {
	return s.createJob(gocron.CronJob(crontab, false), name, fn, startImmediately)
}

func (s *Scheduler) taskWithRecover(fn taskFn, jobName string) func(ctx context.Context) {
	return func(ctx context.Context) {
		lg := s.lg.With("jobName", jobName)
		defer func() {
			if r := recover(); r != nil {
				lg.Errorw(
					"panic recovered in scheduler job",
					"panic", r,
					"stacktrace", string(debug.Stack()),
				)
			}
		}()

		lg.Info("job start")
		start := time.Now()

		err := fn(logger.WithLogger(ctx, lg))
		if err != nil {
			lg.Errorw("job failed", "error", err, "elapsedMs", time.Since(start).Milliseconds())
		} else {
			lg.Infow("job completed", "elapsedMs", time.Since(start).Milliseconds())
		}
	}
}
