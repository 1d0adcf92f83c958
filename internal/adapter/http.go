package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/quantacloud/qcc/internal/config"
	"github.com/quantacloud/qcc/internal/logger"
	"github.com/quantacloud/qcc/internal/utils"
	"github.com/quantacloud/qcc/models"
)

const (
	// apiVersion is sent in the Accept-Version header on every request.
	apiVersion = "0.4.0"

	// clientVersion identifies this client build in the User-Agent header.
	clientVersion = "0.3.2"

	// tokenPath is the OpenID Connect endpoint that exchanges refresh
	// tokens for access tokens.
	tokenPath = "/auth/realms/platform/protocol/openid-connect/token"
)

type httpCloudAdapter struct {
	client *utils.HTTPClient
	uuids  *utils.UUIDGenerator

	mu    sync.RWMutex
	token models.Token

	logger *logger.Logger
}

// NewHTTPCloudAdapter constructs an HTTPS/JSON implementation of
// [CloudAdapter] from the resolved settings. The base URL is assembled from
// the scheme, host, and port; the request timeout bounds every outbound
// call.
//
// Returns [ErrNoCredentials] if neither a refresh token nor an access token
// is configured.
func NewHTTPCloudAdapter(settings *config.Settings, log *logger.Logger) (CloudAdapter, error) {
	if !settings.HasCredentials() {
		return nil, ErrNoCredentials
	}

	scheme := "https"
	if !settings.TLS {
		scheme = "http"
	}
	baseURL := fmt.Sprintf("%s://%s:%d", scheme, settings.Host, settings.Port)

	timeout := settings.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpCloudAdapter{
		client: client,
		uuids:  utils.NewUUIDGenerator(),
		token: models.Token{
			AccessToken:  settings.AccessToken,
			RefreshToken: settings.RefreshToken,
		},
		logger: log,
	}, nil
}

// SetToken implements [CloudAdapter].
func (h *httpCloudAdapter) SetToken(token models.Token) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token implements [CloudAdapter].
func (h *httpCloudAdapter) Token() models.Token {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Ping implements [CloudAdapter]. It GETs the health endpoint; any non-2xx
// status or transport failure is returned as an error.
func (h *httpCloudAdapter) Ping(ctx context.Context) error {
	_, err := h.request(ctx, http.MethodGet, "/healthz", nil, nil)
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}
	return nil
}

// Devices implements [CloudAdapter].
func (h *httpCloudAdapter) Devices(ctx context.Context) ([]models.Device, error) {
	var list models.DeviceListResponse
	if _, err := h.request(ctx, http.MethodGet, "/devices", nil, &list); err != nil {
		return nil, fmt.Errorf("list devices request: %w", err)
	}
	return list.Data, nil
}

// Device implements [CloudAdapter].
func (h *httpCloudAdapter) Device(ctx context.Context, target string) (models.Device, error) {
	var device models.Device
	if _, err := h.request(ctx, http.MethodGet, "/devices/"+target, nil, &device); err != nil {
		return models.Device{}, fmt.Errorf("get device request: %w", err)
	}
	return device, nil
}

// DeviceCertificate implements [CloudAdapter].
func (h *httpCloudAdapter) DeviceCertificate(ctx context.Context, target string) (models.DeviceCertificate, error) {
	var cert models.DeviceCertificate
	if _, err := h.request(ctx, http.MethodGet, "/devices/"+target+"/certificate", nil, &cert); err != nil {
		return nil, fmt.Errorf("get device certificate request: %w", err)
	}
	return cert, nil
}

// DeviceSpecification implements [CloudAdapter].
func (h *httpCloudAdapter) DeviceSpecification(ctx context.Context, target string) (models.DeviceSpecification, error) {
	var spec models.DeviceSpecification
	if _, err := h.request(ctx, http.MethodGet, "/devices/"+target+"/specifications", nil, &spec); err != nil {
		return nil, fmt.Errorf("get device specification request: %w", err)
	}
	return spec, nil
}

// SubmitJob implements [CloudAdapter].
func (h *httpCloudAdapter) SubmitJob(ctx context.Context, req models.SubmitJobRequest) (models.Job, error) {
	var job models.Job
	if _, err := h.request(ctx, http.MethodPost, "/jobs", req, &job); err != nil {
		return models.Job{}, fmt.Errorf("submit job request: %w", err)
	}
	return job, nil
}

// Job implements [CloudAdapter].
func (h *httpCloudAdapter) Job(ctx context.Context, id string) (models.Job, error) {
	var job models.Job
	if _, err := h.request(ctx, http.MethodGet, "/jobs/"+id, nil, &job); err != nil {
		return models.Job{}, fmt.Errorf("get job request: %w", err)
	}
	return job, nil
}

// Jobs implements [CloudAdapter]. When filter.IDs is non-empty the page
// size is the number of IDs, mirroring the server's contract.
func (h *httpCloudAdapter) Jobs(ctx context.Context, filter models.JobListFilter) ([]models.Job, error) {
	size := filter.Limit
	if len(filter.IDs) > 0 {
		size = len(filter.IDs)
	}

	params := url.Values{}
	if size > 0 {
		params.Set("size", strconv.Itoa(size))
	}
	for _, id := range filter.IDs {
		params.Add("id", id)
	}
	if filter.Status != "" {
		params.Set("status", string(filter.Status))
	}

	req := h.authedRequest(ctx).SetQueryParamsFromValues(params)

	var list models.JobListResponse
	if _, err := h.send(req, http.MethodGet, "/jobs", nil, &list); err != nil {
		return nil, fmt.Errorf("list jobs request: %w", err)
	}

	return list.Data, nil
}

// CancelJob implements [CloudAdapter]. Cancellation is a PATCH moving the
// job towards the cancelled status; the server answers with cancel_pending
// until the device acknowledges.
func (h *httpCloudAdapter) CancelJob(ctx context.Context, id string) error {
	body := map[string]string{"status": string(models.JobStatusCancelled)}
	if _, err := h.request(ctx, http.MethodPatch, "/jobs/"+id, body, nil); err != nil {
		return fmt.Errorf("cancel job request: %w", err)
	}
	return nil
}

// JobCircuit implements [CloudAdapter].
func (h *httpCloudAdapter) JobCircuit(ctx context.Context, id string) (models.JobCircuit, error) {
	var circuit models.JobCircuit
	if _, err := h.request(ctx, http.MethodGet, "/jobs/"+id+"/circuit", nil, &circuit); err != nil {
		return models.JobCircuit{}, fmt.Errorf("get job circuit request: %w", err)
	}
	return circuit, nil
}

// JobResult implements [CloudAdapter]. Result payloads are served in pages
// of chunks; every chunk carries a sequence index assigned by the server.
// The method follows the Next offsets until the final page and returns the
// chunks as received, without reordering.
func (h *httpCloudAdapter) JobResult(ctx context.Context, id string) ([]models.ResultChunk, error) {
	var chunks []models.ResultChunk

	offset := 0
	for {
		req := h.authedRequest(ctx)
		if offset > 0 {
			req.SetQueryParam("offset", strconv.Itoa(offset))
		}

		var page models.ResultResponse
		if _, err := h.send(req, http.MethodGet, "/jobs/"+id+"/result", nil, &page); err != nil {
			return nil, fmt.Errorf("get job result request: %w", err)
		}

		chunks = append(chunks, page.Chunks...)
		if page.Next == nil {
			return chunks, nil
		}
		offset = *page.Next
	}
}

// request performs an authenticated call and decodes a 2xx JSON body into
// result (when non-nil). It refreshes an expired access token before
// sending, and on a 401 refreshes once and retries the request a single
// time. A failed refresh propagates immediately.
func (h *httpCloudAdapter) request(ctx context.Context, method, path string, body, result any) (*resty.Response, error) {
	return h.send(h.authedRequest(ctx), method, path, body, result)
}

func (h *httpCloudAdapter) send(req *resty.Request, method, path string, body, result any) (*resty.Response, error) {
	ctx := req.Context()

	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		if err = h.refreshAccessToken(ctx); err != nil {
			return nil, err
		}

		retry := h.authedRequest(ctx)
		if body != nil {
			retry.SetHeader("Content-Type", "application/json").SetBody(body)
		}
		retry.QueryParam = req.QueryParam

		resp, err = retry.Execute(method, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
		}
	}

	if err = mapHTTPError(resp); err != nil {
		return resp, err
	}

	if result != nil {
		if err = json.Unmarshal(resp.Body(), result); err != nil {
			return resp, fmt.Errorf("%w: decode %s %s: %v", ErrMalformedResponse, method, path, err)
		}
	}

	return resp, nil
}

// refreshAccessToken exchanges the refresh token for a new access token and
// stores it for subsequent requests. Returns [ErrInvalidRefreshToken] when
// the auth service rejects the grant, or [ErrUnauthorized] when no refresh
// token is available at all.
func (h *httpCloudAdapter) refreshAccessToken(ctx context.Context) error {
	token := h.Token()
	if token.RefreshToken == "" {
		return fmt.Errorf("%w: access token rejected and no refresh token configured", ErrUnauthorized)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", h.uuids.Generate()).
		SetFormData(map[string]string{
			"grant_type":    "refresh_token",
			"refresh_token": token.RefreshToken,
			"client_id":     "public",
		}).
		Post(tokenPath)
	if err != nil {
		return fmt.Errorf("%w: refresh access token: %v", ErrNetwork, err)
	}

	if resp.StatusCode() == http.StatusBadRequest {
		var body struct {
			Error string `json:"error"`
		}
		if err = json.Unmarshal(resp.Body(), &body); err == nil && body.Error == "invalid_grant" {
			return ErrInvalidRefreshToken
		}
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("refresh access token: %w", err)
	}

	var tr models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return fmt.Errorf("%w: decode token response: %v", ErrMalformedResponse, err)
	}

	h.mu.Lock()
	h.token.AccessToken = tr.AccessToken
	h.mu.Unlock()

	h.logger.Debug().Msg("access token refreshed")
	return nil
}

// authedRequest prepares a request with the standard headers. An access
// token that is past its exp claim is refreshed up front so most requests
// never see the 401 round trip.
func (h *httpCloudAdapter) authedRequest(ctx context.Context) *resty.Request {
	token := h.Token()
	if token.RefreshToken != "" && token.Expired(time.Now()) {
		if err := h.refreshAccessToken(ctx); err != nil {
			h.logger.Debug().Err(err).Msg("proactive token refresh failed")
		} else {
			token = h.Token()
		}
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept-Version", apiVersion).
		SetHeader("User-Agent", fmt.Sprintf("QCC/%s (Go)", clientVersion)).
		SetHeader("X-Request-ID", h.uuids.Generate())

	if token.AccessToken != "" {
		req.SetHeader("Authorization", "Bearer "+token.AccessToken)
	}
	return req
}
