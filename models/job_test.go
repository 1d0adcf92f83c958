package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobStatus_Terminal(t *testing.T) {
	tests := []struct {
		status JobStatus
		want   bool
	}{
		{JobStatusOpen, false},
		{JobStatusQueued, false},
		{JobStatusRunning, false},
		{JobStatusCancelPending, false},
		{JobStatusCancelled, true},
		{JobStatusComplete, true},
		{JobStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Terminal())
			assert.True(t, tt.status.Valid())
		})
	}
}

func TestJobStatus_Valid_UnknownStatus(t *testing.T) {
	assert.False(t, JobStatus("exploded").Valid())
	assert.False(t, JobStatus("exploded").Terminal())
}

func TestJob_Finished(t *testing.T) {
	assert.False(t, Job{Status: JobStatusQueued}.Finished())
	assert.True(t, Job{Status: JobStatusComplete}.Finished())
}

func TestJob_RunningTime(t *testing.T) {
	_, ok := Job{}.RunningTime()
	assert.False(t, ok, "no running time reported while in flight")

	seconds := 1.5
	got, ok := Job{RunningSeconds: &seconds}.RunningTime()
	assert.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, got)
}
