package store

import (
	"context"

	"github.com/quantacloud/qcc/models"
)

// JobCacheRepository is the persistence contract for the local job cache.
type JobCacheRepository interface {
	// UpsertJobs inserts or replaces the cached record of each job,
	// keyed by job ID.
	UpsertJobs(ctx context.Context, jobs ...models.Job) error

	// GetJob returns the cached record of a single job. Returns
	// [ErrJobNotCached] if the job has never been cached.
	GetJob(ctx context.Context, id string) (models.Job, error)

	// ListJobs returns up to limit cached jobs, newest first. A
	// non-positive limit returns all cached jobs.
	ListJobs(ctx context.Context, limit int) ([]models.Job, error)
}
