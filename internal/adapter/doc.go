// Package adapter provides the transport layer for communicating with the
// quantum cloud API.
//
// The primary abstraction is [CloudAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTPS/JSON
// implementation ([NewHTTPCloudAdapter]) built on resty.
//
// Authentication is handled inside the adapter: every request carries a
// bearer access token, and a 401 response triggers exactly one token
// refresh followed by one retry of the original request. There is no
// backoff engine; a second authentication failure propagates to the caller.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter
