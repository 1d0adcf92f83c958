package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantacloud/qcc/internal/logger"
	"github.com/quantacloud/qcc/models"
)

func TestDeviceService_List_NoFilter(t *testing.T) {
	cloud := &fakeAdapter{
		devicesFn: func(_ context.Context) ([]models.Device, error) {
			return []models.Device{
				{Target: "X8_01", Status: models.DeviceOnline},
				{Target: "simulon_gaussian", Status: models.DeviceOffline},
			}, nil
		},
	}
	svc := NewDeviceService(cloud, logger.Nop())

	devices, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, devices, 2)
}

func TestDeviceService_List_StatusFilter(t *testing.T) {
	cloud := &fakeAdapter{
		devicesFn: func(_ context.Context) ([]models.Device, error) {
			return []models.Device{
				{Target: "X8_01", Status: models.DeviceOnline},
				{Target: "X12_02", Status: models.DeviceOffline},
				{Target: "simulon_gaussian", Status: models.DeviceOnline},
			}, nil
		},
	}
	svc := NewDeviceService(cloud, logger.Nop())

	devices, err := svc.List(context.Background(), models.DeviceOnline)

	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "X8_01", devices[0].Target)
	assert.Equal(t, "simulon_gaussian", devices[1].Target)
}

func TestDeviceService_List_AdapterError(t *testing.T) {
	wantErr := errors.New("boom")
	cloud := &fakeAdapter{
		devicesFn: func(_ context.Context) ([]models.Device, error) {
			return nil, wantErr
		},
	}
	svc := NewDeviceService(cloud, logger.Nop())

	_, err := svc.List(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestDeviceService_Certificate(t *testing.T) {
	cloud := &fakeAdapter{
		certFn: func(_ context.Context, target string) (models.DeviceCertificate, error) {
			assert.Equal(t, "X8_01", target)
			return models.DeviceCertificate{"laser_wavelength_meters": 1.55e-06}, nil
		},
	}
	svc := NewDeviceService(cloud, logger.Nop())

	cert, err := svc.Certificate(context.Background(), "X8_01")

	require.NoError(t, err)
	assert.Contains(t, cert, "laser_wavelength_meters")
}

func TestDeviceService_Specification(t *testing.T) {
	cloud := &fakeAdapter{
		specFn: func(_ context.Context, target string) (models.DeviceSpecification, error) {
			return models.DeviceSpecification{"compiler": []any{"Xunitary"}}, nil
		},
	}
	svc := NewDeviceService(cloud, logger.Nop())

	spec, err := svc.Specification(context.Background(), "X8_01")

	require.NoError(t, err)
	assert.Contains(t, spec, "compiler")
}
