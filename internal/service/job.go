package service

import (
	"context"
	"fmt"
	"time"

	"github.com/quantacloud/qcc/internal/adapter"
	"github.com/quantacloud/qcc/internal/config"
	"github.com/quantacloud/qcc/internal/logger"
	"github.com/quantacloud/qcc/internal/store"
	"github.com/quantacloud/qcc/models"
)

type jobService struct {
	adapter      adapter.CloudAdapter
	cache        store.JobCacheRepository
	pollInterval time.Duration
	logger       *logger.Logger
}

// NewJobService constructs the [JobService]. cache may be nil when the
// local cache database could not be opened; every cache interaction is
// best-effort and a nil cache only disables ListCached.
func NewJobService(cloudAdapter adapter.CloudAdapter, cache store.JobCacheRepository, pollInterval time.Duration, log *logger.Logger) JobService {
	if pollInterval <= 0 {
		pollInterval = config.DefaultPollInterval
	}

	return &jobService{
		adapter:      cloudAdapter,
		cache:        cache,
		pollInterval: pollInterval,
		logger:       log,
	}
}

func (s *jobService) Submit(ctx context.Context, req models.SubmitJobRequest) (models.Job, error) {
	job, err := s.adapter.SubmitJob(ctx, req)
	if err != nil {
		return models.Job{}, fmt.Errorf("submit job: %w", err)
	}

	s.cacheJobs(ctx, job)
	return job, nil
}

func (s *jobService) Get(ctx context.Context, id string) (models.Job, error) {
	job, err := s.adapter.Job(ctx, id)
	if err != nil {
		return models.Job{}, fmt.Errorf("get job: %w", err)
	}

	s.cacheJobs(ctx, job)
	return job, nil
}

func (s *jobService) List(ctx context.Context, filter models.JobListFilter) ([]models.Job, error) {
	jobs, err := s.adapter.Jobs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	s.cacheJobs(ctx, jobs...)
	return jobs, nil
}

func (s *jobService) ListCached(ctx context.Context, limit int) ([]models.Job, error) {
	if s.cache == nil {
		return nil, ErrNoCache
	}
	return s.cache.ListJobs(ctx, limit)
}

func (s *jobService) Circuit(ctx context.Context, id string) (models.JobCircuit, error) {
	circuit, err := s.adapter.JobCircuit(ctx, id)
	if err != nil {
		return models.JobCircuit{}, fmt.Errorf("get job circuit: %w", err)
	}
	return circuit, nil
}

// Cancel implements [JobService]. Terminal statuses are absorbing, so a
// finished job is left as-is without a cancellation request.
func (s *jobService) Cancel(ctx context.Context, id string) error {
	job, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if job.Finished() {
		return nil
	}

	if err = s.adapter.CancelJob(ctx, id); err != nil {
		return fmt.Errorf("cancel job: %w", err)
	}
	return nil
}

// Result implements [JobService]. Chunks arrive with server-assigned
// sequence indices and are reassembled by index, never by arrival order.
func (s *jobService) Result(ctx context.Context, id string) ([]byte, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case job.Status == models.JobStatusFailed:
		return nil, fmt.Errorf("%w: %v", ErrJobFailed, job.Metadata)
	case job.Status == models.JobStatusCancelled:
		return nil, fmt.Errorf("%w: %s", ErrJobCancelled, id)
	case !job.Finished():
		return nil, fmt.Errorf("%w: %s is %s", ErrJobNotFinished, id, job.Status)
	}

	chunks, err := s.adapter.JobResult(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job result: %w", err)
	}

	return models.AssembleResult(chunks), nil
}

// Wait implements [JobService]. The polling loop is deliberately plain: a
// fixed interval, no backoff, terminated by a terminal status or by ctx.
func (s *jobService) Wait(ctx context.Context, id string, interval time.Duration) (models.Job, error) {
	if interval <= 0 {
		interval = s.pollInterval
	}

	job, err := s.Get(ctx, id)
	if err != nil {
		return models.Job{}, err
	}
	if job.Finished() {
		return job, nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return job, fmt.Errorf("waiting for job %s: %w", id, ctx.Err())
		case <-ticker.C:
			job, err = s.Get(ctx, id)
			if err != nil {
				return models.Job{}, err
			}
			if job.Finished() {
				return job, nil
			}
		}
	}
}

// cacheJobs mirrors job records into the local cache. Failures are logged
// and swallowed: the cache must never break an API operation.
func (s *jobService) cacheJobs(ctx context.Context, jobs ...models.Job) {
	if s.cache == nil || len(jobs) == 0 {
		return
	}

	if err := s.cache.UpsertJobs(ctx, jobs...); err != nil {
		s.logger.Warn().Err(err).Msg("failed to refresh local job cache")
	}
}
