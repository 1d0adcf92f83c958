package adapter

import (
	"context"

	"github.com/quantacloud/qcc/models"
)

// CloudAdapter defines transport-agnostic communication with the quantum
// cloud API. Implementations are responsible for serialisation, bearer
// token management (including the single refresh-then-retry on expiry), and
// mapping transport-level errors to the sentinel values defined in this
// package.
type CloudAdapter interface {
	// SetToken replaces the credential pair used for authentication.
	SetToken(token models.Token)

	// Token returns the credential pair currently held by the adapter.
	// The access token may have been replaced by a refresh since the
	// adapter was constructed.
	Token() models.Token

	// Ping checks connectivity and authentication against the API health
	// endpoint.
	Ping(ctx context.Context) error

	// Devices lists the compute devices known to the cloud service.
	Devices(ctx context.Context) ([]models.Device, error)

	// Device fetches the full record of a single device by target name.
	Device(ctx context.Context, target string) (models.Device, error)

	// DeviceCertificate fetches the current operating conditions of a
	// device. The key set varies per device.
	DeviceCertificate(ctx context.Context, target string) (models.DeviceCertificate, error)

	// DeviceSpecification fetches the gate set and operating parameters
	// of a device.
	DeviceSpecification(ctx context.Context, target string) (models.DeviceSpecification, error)

	// SubmitJob creates a job on the cloud service and returns the
	// server-side record, including the assigned ID.
	SubmitJob(ctx context.Context, req models.SubmitJobRequest) (models.Job, error)

	// Job fetches the current record of a job, including its status.
	Job(ctx context.Context, id string) (models.Job, error)

	// Jobs lists jobs submitted by the authenticated user, newest first,
	// narrowed by filter.
	Jobs(ctx context.Context, filter models.JobListFilter) ([]models.Job, error)

	// CancelJob asks the server to cancel a job. The server may report
	// cancel_pending before the job settles in the cancelled state.
	CancelJob(ctx context.Context, id string) error

	// JobCircuit fetches the circuit source stored for a job.
	JobCircuit(ctx context.Context, id string) (models.JobCircuit, error)

	// JobResult downloads all result chunks of a finished job, following
	// pagination until the last page. Chunks are returned as received;
	// ordering by sequence index is the caller's concern.
	JobResult(ctx context.Context, id string) ([]models.ResultChunk, error)
}
