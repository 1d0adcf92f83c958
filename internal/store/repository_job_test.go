package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantacloud/qcc/internal/logger"
	"github.com/quantacloud/qcc/models"
)

// newMockRepository wires a sqlmock-backed repository with exact query
// matching so the builder output is asserted verbatim.
func newMockRepository(t *testing.T) (JobCacheRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewJobCacheRepository(db, logger.Nop()), mock
}

func addJobRow(rows *sqlmock.Rows, row jobRow) *sqlmock.Rows {
	return rows.AddRow(
		row.ID, row.Name, row.Status, row.Target,
		row.Language, row.CreatedAt, row.FinishedAt, row.Metadata,
	)
}

func TestJobCacheRepository_UpsertJobs(t *testing.T) {
	repo, mock := newMockRepository(t)

	created := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	finished := created.Add(time.Minute)
	job := models.Job{
		ID:         "j-1",
		Name:       "example",
		Status:     models.JobStatusComplete,
		Target:     "X8_01",
		Language:   "blackbird:1.0",
		CreatedAt:  created,
		FinishedAt: &finished,
		Metadata:   map[string]any{"shots": float64(1024)},
	}

	row, err := toJobRow(job)
	require.NoError(t, err)
	query, _, err := buildUpsertJobQuery(row)
	require.NoError(t, err)

	mock.ExpectExec(query).
		WithArgs(
			"j-1", "example", "complete", "X8_01", "blackbird:1.0",
			created, sql.NullTime{Time: finished, Valid: true}, `{"shots":1024}`,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertJobs(context.Background(), job))
}

func TestJobCacheRepository_UpsertJobs_ExecError(t *testing.T) {
	repo, mock := newMockRepository(t)

	job := models.Job{ID: "j-1", Status: models.JobStatusQueued}
	row, err := toJobRow(job)
	require.NoError(t, err)
	query, _, err := buildUpsertJobQuery(row)
	require.NoError(t, err)

	mock.ExpectExec(query).WillReturnError(sql.ErrConnDone)

	err = repo.UpsertJobs(context.Background(), job)
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestJobCacheRepository_GetJob(t *testing.T) {
	repo, mock := newMockRepository(t)

	created := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	stored := jobRow{
		ID:        "j-1",
		Name:      "example",
		Status:    "failed",
		Target:    "X8_01",
		Language:  "blackbird:1.0",
		CreatedAt: created,
		Metadata:  `{"error":"device fault"}`,
	}

	query, _, err := buildSelectJobQuery("j-1")
	require.NoError(t, err)

	rows := addJobRow(sqlmock.NewRows(jobColumns), stored)
	mock.ExpectQuery(query).WithArgs("j-1").WillReturnRows(rows)

	job, err := repo.GetJob(context.Background(), "j-1")

	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, job.Status)
	assert.Nil(t, job.FinishedAt)
	assert.Equal(t, "device fault", job.Metadata["error"])
}

func TestJobCacheRepository_GetJob_NotCached(t *testing.T) {
	repo, mock := newMockRepository(t)

	query, _, err := buildSelectJobQuery("missing")
	require.NoError(t, err)
	mock.ExpectQuery(query).WithArgs("missing").WillReturnRows(sqlmock.NewRows(jobColumns))

	_, err = repo.GetJob(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJobNotCached)
}

func TestJobCacheRepository_ListJobs(t *testing.T) {
	repo, mock := newMockRepository(t)

	newer := jobRow{ID: "j-2", Status: "running", CreatedAt: time.Now(), Metadata: "{}"}
	older := jobRow{ID: "j-1", Status: "complete", CreatedAt: time.Now().Add(-time.Hour), Metadata: "{}"}

	query, _, err := buildSelectJobsQuery(10)
	require.NoError(t, err)

	rows := sqlmock.NewRows(jobColumns)
	addJobRow(rows, newer)
	addJobRow(rows, older)
	mock.ExpectQuery(query).WillReturnRows(rows)

	jobs, err := repo.ListJobs(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "j-2", jobs[0].ID)
	assert.Equal(t, "j-1", jobs[1].ID)
}

func TestJobRow_RoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	finished := created.Add(90 * time.Second)
	job := models.Job{
		ID:         "j-1",
		Name:       "example",
		Status:     models.JobStatusComplete,
		Target:     "simulon_gaussian",
		Language:   "blackbird:1.0",
		CreatedAt:  created,
		FinishedAt: &finished,
		Metadata:   map[string]any{"shots": float64(4)},
	}

	row, err := toJobRow(job)
	require.NoError(t, err)
	got, err := fromJobRow(row)
	require.NoError(t, err)

	assert.Equal(t, job, got)
}
