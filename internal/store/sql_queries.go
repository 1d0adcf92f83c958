package store

import (
	sq "github.com/Masterminds/squirrel"
)

const jobsTable = "jobs"

var jobColumns = []string{
	"id",
	"name",
	"status",
	"target",
	"language",
	"created_at",
	"finished_at",
	"metadata",
}

// buildUpsertJobQuery builds an insert-or-replace statement for a single
// cached job row. SQLite resolves the primary-key conflict by updating the
// mutable columns in place.
func buildUpsertJobQuery(row jobRow) (string, []any, error) {
	return sq.Insert(jobsTable).
		Columns(jobColumns...).
		Values(
			row.ID,
			row.Name,
			row.Status,
			row.Target,
			row.Language,
			row.CreatedAt,
			row.FinishedAt,
			row.Metadata,
		).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			status = excluded.status,
			target = excluded.target,
			language = excluded.language,
			created_at = excluded.created_at,
			finished_at = excluded.finished_at,
			metadata = excluded.metadata`).
		ToSql()
}

// buildSelectJobQuery builds the lookup of one cached job by ID.
func buildSelectJobQuery(id string) (string, []any, error) {
	return sq.Select(jobColumns...).
		From(jobsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectJobsQuery builds the newest-first listing, capped at limit
// when limit is positive.
func buildSelectJobsQuery(limit int) (string, []any, error) {
	query := sq.Select(jobColumns...).
		From(jobsTable).
		OrderBy("created_at DESC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query.ToSql()
}
