package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpsertJobQuery(t *testing.T) {
	row := jobRow{
		ID:        "j-1",
		Name:      "example",
		Status:    "queued",
		Target:    "X8_01",
		Language:  "blackbird:1.0",
		CreatedAt: time.Now(),
		Metadata:  "{}",
	}

	query, args, err := buildUpsertJobQuery(row)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO jobs")
	assert.Contains(t, query, "ON CONFLICT(id) DO UPDATE")
	assert.Contains(t, query, "status = excluded.status")
	require.Len(t, args, len(jobColumns))
	assert.Equal(t, "j-1", args[0])
}

func TestBuildSelectJobQuery(t *testing.T) {
	query, args, err := buildSelectJobQuery("j-1")
	require.NoError(t, err)

	assert.Contains(t, query, "FROM jobs")
	assert.Contains(t, query, "id = ?")
	assert.Equal(t, []any{"j-1"}, args)
}

func TestBuildSelectJobsQuery(t *testing.T) {
	query, _, err := buildSelectJobsQuery(10)
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Contains(t, query, "LIMIT 10")
}

func TestBuildSelectJobsQuery_NoLimit(t *testing.T) {
	query, _, err := buildSelectJobsQuery(0)
	require.NoError(t, err)

	assert.NotContains(t, query, "LIMIT")
}
