package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/quantacloud/qcc/internal/logger"
	"github.com/quantacloud/qcc/models"
)

type jobCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewJobCacheRepository constructs the SQLite-backed [JobCacheRepository].
func NewJobCacheRepository(db *DB, logger *logger.Logger) JobCacheRepository {
	return &jobCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// jobRow is the flat database image of a models.Job. Metadata is stored as
// a JSON document; finished_at is NULL while the job is in flight.
type jobRow struct {
	ID         string
	Name       string
	Status     string
	Target     string
	Language   string
	CreatedAt  time.Time
	FinishedAt sql.NullTime
	Metadata   string
}

func (r *jobCacheRepository) UpsertJobs(ctx context.Context, jobs ...models.Job) error {
	for _, job := range jobs {
		row, err := toJobRow(job)
		if err != nil {
			return fmt.Errorf("encode job %s for cache: %w", job.ID, err)
		}

		query, args, err := buildUpsertJobQuery(row)
		if err != nil {
			return fmt.Errorf("build upsert query: %w", err)
		}

		if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "jobCacheRepository.UpsertJobs").
				Str("job_id", job.ID).
				Msg("failed to execute upsert for cached job")
			return fmt.Errorf("failed to cache job %s: %w", job.ID, err)
		}
	}

	return nil
}

func (r *jobCacheRepository) GetJob(ctx context.Context, id string) (models.Job, error) {
	query, args, err := buildSelectJobQuery(id)
	if err != nil {
		return models.Job{}, fmt.Errorf("build select query: %w", err)
	}

	var row jobRow
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&row.ID,
		&row.Name,
		&row.Status,
		&row.Target,
		&row.Language,
		&row.CreatedAt,
		&row.FinishedAt,
		&row.Metadata,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, fmt.Errorf("%w: %s", ErrJobNotCached, id)
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "jobCacheRepository.GetJob").
			Str("job_id", id).
			Msg("failed to scan cached job row")
		return models.Job{}, fmt.Errorf("failed to read cached job: %w", err)
	}

	return fromJobRow(row)
}

func (r *jobCacheRepository) ListJobs(ctx context.Context, limit int) ([]models.Job, error) {
	query, args, err := buildSelectJobsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "jobCacheRepository.ListJobs").
			Msg("failed to query cached jobs")
		return nil, fmt.Errorf("failed to list cached jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var row jobRow
		if err = rows.Scan(
			&row.ID,
			&row.Name,
			&row.Status,
			&row.Target,
			&row.Language,
			&row.CreatedAt,
			&row.FinishedAt,
			&row.Metadata,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cached job row: %w", err)
		}

		job, err := fromJobRow(row)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached jobs: %w", err)
	}

	return jobs, nil
}

func toJobRow(job models.Job) (jobRow, error) {
	metadata := "{}"
	if len(job.Metadata) > 0 {
		payload, err := json.Marshal(job.Metadata)
		if err != nil {
			return jobRow{}, err
		}
		metadata = string(payload)
	}

	row := jobRow{
		ID:        job.ID,
		Name:      job.Name,
		Status:    string(job.Status),
		Target:    job.Target,
		Language:  job.Language,
		CreatedAt: job.CreatedAt,
		Metadata:  metadata,
	}
	if job.FinishedAt != nil {
		row.FinishedAt = sql.NullTime{Time: *job.FinishedAt, Valid: true}
	}

	return row, nil
}

func fromJobRow(row jobRow) (models.Job, error) {
	job := models.Job{
		ID:        row.ID,
		Name:      row.Name,
		Status:    models.JobStatus(row.Status),
		Target:    row.Target,
		Language:  row.Language,
		CreatedAt: row.CreatedAt,
	}
	if row.FinishedAt.Valid {
		finished := row.FinishedAt.Time
		job.FinishedAt = &finished
	}

	if row.Metadata != "" && row.Metadata != "{}" {
		if err := json.Unmarshal([]byte(row.Metadata), &job.Metadata); err != nil {
			return models.Job{}, fmt.Errorf("decode cached job metadata: %w", err)
		}
	}

	return job, nil
}
