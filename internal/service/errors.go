package service

import "errors"

var (
	// ErrJobFailed indicates the server reported the job as failed; the
	// failure details from the job metadata are attached to the message.
	ErrJobFailed = errors.New("job failed")
	// ErrJobNotFinished indicates a result was requested for a job that
	// has not reached a terminal status yet.
	ErrJobNotFinished = errors.New("job has not finished")
	// ErrJobCancelled indicates a result was requested for a cancelled
	// job, which has no result payload.
	ErrJobCancelled = errors.New("job was cancelled")
	// ErrNoCache indicates a cache-only operation was requested but the
	// local cache database is unavailable.
	ErrNoCache = errors.New("local job cache is unavailable")
)
