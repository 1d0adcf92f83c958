package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody is the error envelope used by the cloud API. Validation errors
// carry per-field messages in Meta; other errors describe themselves in
// Detail.
type errorBody struct {
	Code   string          `json:"code"`
	Detail string          `json:"detail"`
	Meta   json.RawMessage `json:"meta"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		var body errorBody
		if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Code == "validation-error" {
			if msg := joinValidationErrors(body.Meta); msg != "" {
				return fmt.Errorf("%w: %s", ErrValidation, msg)
			}
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// errorDetail extracts the most helpful message available from an error
// response: the "detail" field when the body is the standard envelope,
// otherwise the raw body, otherwise the status text.
func errorDetail(resp *resty.Response) string {
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		return body.Detail
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}

// joinValidationErrors flattens the "meta" field of a validation-error
// response into a single "; "-separated message. Each meta entry is either
// a list of messages or a mapping from field names to message lists.
func joinValidationErrors(meta json.RawMessage) string {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(meta, &entries); err != nil {
		return ""
	}

	var msgs []string
	for _, entry := range entries {
		var list []string
		if err := json.Unmarshal(entry, &list); err == nil {
			msgs = append(msgs, list...)
			continue
		}

		var nested map[string][]string
		if err := json.Unmarshal(entry, &nested); err == nil {
			for _, list := range nested {
				msgs = append(msgs, list...)
			}
		}
	}

	return strings.Join(msgs, "; ")
}
