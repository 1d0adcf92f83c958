package service

import (
	"context"
	"fmt"

	"github.com/quantacloud/qcc/internal/adapter"
	"github.com/quantacloud/qcc/internal/logger"
	"github.com/quantacloud/qcc/models"
)

type deviceService struct {
	adapter adapter.CloudAdapter
	logger  *logger.Logger
}

// NewDeviceService constructs the [DeviceService].
func NewDeviceService(cloudAdapter adapter.CloudAdapter, log *logger.Logger) DeviceService {
	return &deviceService{adapter: cloudAdapter, logger: log}
}

func (s *deviceService) List(ctx context.Context, status models.DeviceStatus) ([]models.Device, error) {
	devices, err := s.adapter.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	if status == "" {
		return devices, nil
	}

	filtered := make([]models.Device, 0, len(devices))
	for _, device := range devices {
		if device.Status == status {
			filtered = append(filtered, device)
		}
	}
	return filtered, nil
}

func (s *deviceService) Get(ctx context.Context, target string) (models.Device, error) {
	device, err := s.adapter.Device(ctx, target)
	if err != nil {
		return models.Device{}, fmt.Errorf("get device: %w", err)
	}
	return device, nil
}

func (s *deviceService) Certificate(ctx context.Context, target string) (models.DeviceCertificate, error) {
	cert, err := s.adapter.DeviceCertificate(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("get device certificate: %w", err)
	}
	return cert, nil
}

func (s *deviceService) Specification(ctx context.Context, target string) (models.DeviceSpecification, error) {
	spec, err := s.adapter.DeviceSpecification(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("get device specification: %w", err)
	}
	return spec, nil
}
