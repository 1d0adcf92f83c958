package models

// DeviceStatus is the availability state of a device as reported by the
// cloud API.
type DeviceStatus string

const (
	// DeviceOnline means the device is accepting jobs.
	DeviceOnline DeviceStatus = "online"

	// DeviceOffline means the device is not accepting jobs.
	DeviceOffline DeviceStatus = "offline"
)

// Device is a named remote compute target (simulator or hardware) on the
// cloud service. A Device value is a snapshot of the server-side record.
type Device struct {
	// Target is the unique device name used when submitting jobs
	// (e.g. "X8_01" or "simulon_gaussian").
	Target string `json:"target"`

	// Status is the availability state at fetch time.
	Status DeviceStatus `json:"status"`

	// CreatedAt is when the device record was registered, in the
	// server's RFC 3339 form.
	CreatedAt string `json:"created_at,omitempty"`

	// ExpectedUptime maps lowercase weekday names to a pair of
	// [open, close] times in "15:04:05Z07:00" form. Days the device is
	// not expected online are absent.
	ExpectedUptime map[string][]string `json:"expected_uptime,omitempty"`
}

// Up reports whether the device is accepting jobs.
func (d Device) Up() bool {
	return d.Status == DeviceOnline
}

// Overview returns the subset of device fields shown by the CLI listing.
func (d Device) Overview() map[string]any {
	return map[string]any{
		"target": d.Target,
		"status": string(d.Status),
	}
}

// DeviceListResponse is the envelope returned by the devices collection
// endpoint.
type DeviceListResponse struct {
	// Data holds the known devices.
	Data []Device `json:"data"`
}

// DeviceCertificate carries the current operating conditions of a device.
// The key set varies from device to device, so the payload is kept as a
// free-form map.
type DeviceCertificate map[string]any

// DeviceSpecification describes the gate set and operating parameters of a
// device. The key set varies from device to device.
type DeviceSpecification map[string]any
