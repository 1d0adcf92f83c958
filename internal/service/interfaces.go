// Package service implements the client-side operations on jobs and
// devices on top of the transport adapter, plus the best-effort mirroring
// of job records into the local cache.
package service

import (
	"context"
	"time"

	"github.com/quantacloud/qcc/models"
)

// JobService exposes the job operations offered by the CLI and by library
// callers.
type JobService interface {
	// Submit creates a job on the cloud service and returns the
	// server-side record including the assigned ID.
	Submit(ctx context.Context, req models.SubmitJobRequest) (models.Job, error)

	// Get fetches the current record of a job.
	Get(ctx context.Context, id string) (models.Job, error)

	// List fetches jobs submitted by the authenticated user, narrowed by
	// filter.
	List(ctx context.Context, filter models.JobListFilter) ([]models.Job, error)

	// ListCached lists jobs from the local cache without touching the
	// network. Limit semantics match [store.JobCacheRepository.ListJobs].
	ListCached(ctx context.Context, limit int) ([]models.Job, error)

	// Circuit fetches the circuit source stored for a job.
	Circuit(ctx context.Context, id string) (models.JobCircuit, error)

	// Cancel requests cancellation of a job. Jobs already in a terminal
	// status are left untouched and no request is issued.
	Cancel(ctx context.Context, id string) error

	// Result downloads and reassembles the result payload of a job.
	// Returns [ErrJobFailed] for failed jobs (with the server-reported
	// details) and [ErrJobNotFinished] while the job is in flight.
	Result(ctx context.Context, id string) ([]byte, error)

	// Wait polls the job status every interval until a terminal status
	// is observed or ctx expires. A non-positive interval selects the
	// configured default. A job that is already terminal on the first
	// fetch is returned without any further polling.
	Wait(ctx context.Context, id string, interval time.Duration) (models.Job, error)
}

// DeviceService exposes the device operations offered by the CLI and by
// library callers.
type DeviceService interface {
	// List fetches the known devices. A non-empty status narrows the
	// listing; the filter is applied client-side because the devices
	// endpoint does not support it.
	List(ctx context.Context, status models.DeviceStatus) ([]models.Device, error)

	// Get fetches the full record of a single device.
	Get(ctx context.Context, target string) (models.Device, error)

	// Certificate fetches the current operating conditions of a device.
	Certificate(ctx context.Context, target string) (models.DeviceCertificate, error)

	// Specification fetches the gate set and operating parameters of a
	// device.
	Specification(ctx context.Context, target string) (models.DeviceSpecification, error)
}
