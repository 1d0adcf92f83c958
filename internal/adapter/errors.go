package adapter

import "errors"

// Sentinel errors distinguishing the failure classes surfaced by the
// adapter. HTTP status codes are folded into these by mapHTTPError;
// non-HTTP failures are wrapped in [ErrNetwork] or [ErrMalformedResponse].
var (
	// ErrBadRequest maps HTTP 400 responses without a validation payload.
	ErrBadRequest = errors.New("bad request")
	// ErrValidation maps HTTP 400 responses whose body carries the
	// "validation-error" code; the field errors are joined into the
	// message.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized maps HTTP 401. The adapter retries once with a
	// fresh access token before this error reaches a caller.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden maps HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrConflict maps HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrInternalServerError maps HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
	// ErrBadGateway maps HTTP 502.
	ErrBadGateway = errors.New("bad gateway")

	// ErrNetwork indicates the request never produced an HTTP response
	// (DNS failure, refused connection, timeout).
	ErrNetwork = errors.New("network failure")
	// ErrMalformedResponse indicates the server answered with a body the
	// client could not decode.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNoCredentials indicates the adapter was constructed without a
	// refresh or access token.
	ErrNoCredentials = errors.New("a refresh token (cloud API key) or an access token is required")
	// ErrInvalidRefreshToken indicates the auth service rejected the
	// refresh token, so no new access token can be obtained. Most users
	// hit this with a mistyped API key.
	ErrInvalidRefreshToken = errors.New("refresh token (cloud API key) is invalid")
)
