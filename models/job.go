package models

import (
	"time"
)

// JobStatus is the lifecycle state of a job as reported by the cloud API.
type JobStatus string

const (
	// JobStatusOpen means the job has been accepted but not yet queued
	// for a device.
	JobStatusOpen JobStatus = "open"

	// JobStatusQueued means the job is waiting for its target device.
	JobStatusQueued JobStatus = "queued"

	// JobStatusRunning means the job is executing on its target device.
	JobStatusRunning JobStatus = "running"

	// JobStatusCancelPending means a cancellation request has been
	// received but the job has not yet reached the cancelled state.
	JobStatusCancelPending JobStatus = "cancel_pending"

	// JobStatusCancelled means the job was cancelled before completion.
	// Terminal.
	JobStatusCancelled JobStatus = "cancelled"

	// JobStatusComplete means the job finished and its result is
	// available for download. Terminal.
	JobStatusComplete JobStatus = "complete"

	// JobStatusFailed means the job finished unsuccessfully; failure
	// details are reported in the job metadata. Terminal.
	JobStatusFailed JobStatus = "failed"
)

// Terminal reports whether the status is absorbing: once a job reaches a
// terminal status it never transitions again and must not be polled further.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCancelled, JobStatusComplete, JobStatusFailed:
		return true
	default:
		return false
	}
}

// Valid reports whether the status is one of the states the cloud API is
// known to report.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusQueued, JobStatusRunning,
		JobStatusCancelPending, JobStatusCancelled,
		JobStatusComplete, JobStatusFailed:
		return true
	default:
		return false
	}
}

// Job is a unit of remote computation submitted to the cloud service.
// A Job value is a snapshot of the server-side record; it is mutated only
// by re-fetching from the jobs endpoint.
type Job struct {
	// ID is the opaque server-assigned job identifier.
	ID string `json:"id"`

	// Name is the optional human-readable label given at submission.
	Name string `json:"name,omitempty"`

	// Status is the lifecycle state of the job at fetch time.
	Status JobStatus `json:"status"`

	// Target is the name of the device the job was submitted to.
	Target string `json:"target"`

	// Language identifies the circuit language of the submitted program
	// (e.g. "blackbird:1.0").
	Language string `json:"language,omitempty"`

	// CreatedAt is when the server accepted the job.
	CreatedAt time.Time `json:"created_at"`

	// StartedAt is when the job began executing, or nil if it has not
	// started yet.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// FinishedAt is when the job reached a terminal status, or nil if it
	// is still in flight.
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// RunningSeconds is the execution time in seconds, or nil while the
	// job is in flight. Use RunningTime for a time.Duration view.
	RunningSeconds *float64 `json:"running_time,omitempty"`

	// Metadata carries server-reported details about the job. For failed
	// jobs the failure reason is reported here.
	Metadata map[string]any `json:"meta,omitempty"`
}

// Finished reports whether the job has reached a terminal status.
func (j Job) Finished() bool {
	return j.Status.Terminal()
}

// RunningTime converts RunningSeconds into a time.Duration. The second
// return value is false while the server has not reported a running time.
func (j Job) RunningTime() (time.Duration, bool) {
	if j.RunningSeconds == nil {
		return 0, false
	}
	return time.Duration(*j.RunningSeconds * float64(time.Second)), true
}

// SubmitJobRequest is the payload for creating a job on the cloud service.
type SubmitJobRequest struct {
	// Name is an optional label for the job.
	Name string `json:"name,omitempty"`

	// Target is the device the job should run on. Required.
	Target string `json:"target"`

	// Circuit is the program source to execute. Required.
	Circuit string `json:"circuit"`

	// Language identifies the circuit language of Circuit. Required.
	Language string `json:"language"`
}

// JobListResponse is the paginated envelope returned by the jobs
// collection endpoint.
type JobListResponse struct {
	// Data holds the page of jobs.
	Data []Job `json:"data"`
}

// JobCircuit is the circuit record attached to a submitted job.
type JobCircuit struct {
	// Circuit is the program source as stored by the server.
	Circuit string `json:"circuit"`
}

// JobListFilter narrows the set of jobs returned by a list request.
// The zero value applies no filtering beyond the default page size.
type JobListFilter struct {
	// Limit caps the number of jobs returned. When IDs is non-empty the
	// limit is the number of IDs instead.
	Limit int

	// IDs restricts the listing to the given job identifiers.
	IDs []string

	// Status restricts the listing to jobs in the given state.
	Status JobStatus
}
