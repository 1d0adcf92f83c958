package service

import (
	"context"
	"fmt"
	"time"

	"github.com/quantacloud/qcc/internal/adapter"
	"github.com/quantacloud/qcc/internal/logger"
	"github.com/quantacloud/qcc/internal/store"
)

// Services aggregates the client-side service layer so the CLI and TUI can
// be wired with a single dependency.
type Services struct {
	Jobs    JobService
	Devices DeviceService

	adapter adapter.CloudAdapter
}

// NewServices builds the service layer on top of the transport adapter and
// the optional local job cache.
func NewServices(cloudAdapter adapter.CloudAdapter, cache store.JobCacheRepository, pollInterval time.Duration, log *logger.Logger) *Services {
	return &Services{
		Jobs:    NewJobService(cloudAdapter, cache, pollInterval, log),
		Devices: NewDeviceService(cloudAdapter, log),
		adapter: cloudAdapter,
	}
}

// Ping checks connectivity and authentication against the cloud API.
func (s *Services) Ping(ctx context.Context) error {
	if err := s.adapter.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
