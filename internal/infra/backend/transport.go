// Package backend is the typed client of the restaurant REST backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxResponseBytes = 10 << 20

// request is replayable: the body is kept as bytes so a retry after refresh
// rebuilds the http.Request with the new bearer token.
type request struct {
	operation   string
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
}

func newRequest(operation, method, path string) *request {
	return &request{operation: operation, method: method, path: path}
}

func newJSONRequest(operation, method, path string, payload any) (*request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s payload", operation)
	}

	req := newRequest(operation, method, path)
	req.body = body
	req.contentType = "application/json"

	return req, nil
}

type response struct {
	operation string
	status    int
	body      []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// decode unmarshals a 2xx body into out, or converts a non-2xx body into a domain error
func (r *response) decode(out any) error {
	if !r.ok() {
		return decodeError(r.status, r.body)
	}
	if out == nil || len(bytes.TrimSpace(r.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.body, out); err != nil {
		return errors.Wrapf(domainerrors.ErrBackendUnavailable.WithDetails(err.Error()), "decode %s response", r.operation)
	}

	return nil
}

// Transport sends requests to the backend base URL and records metrics
type Transport struct {
	baseURL   *url.URL
	client    *http.Client
	userAgent string
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// TransportParams holds dependencies for Transport, injected by Fx
type TransportParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewTransport creates the shared backend transport
func NewTransport(params TransportParams) (*Transport, error) {
	return newTransport(params.Config.Backend, &http.Client{Timeout: params.Config.Backend.Timeout}, params.Metrics, params.Logger)
}

func newTransport(cfg config.BackendConfig, client *http.Client, m *metrics.Metrics, logger *slog.Logger) (*Transport, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse backend base url %q", cfg.BaseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("backend base url %q must be absolute", cfg.BaseURL)
	}

	return &Transport{
		baseURL:   base,
		client:    client,
		userAgent: cfg.UserAgent,
		metrics:   m,
		logger:    logger,
	}, nil
}

// send performs one attempt. A transport failure returns ErrBackendUnavailable; any HTTP status is returned as a response.
func (t *Transport) send(ctx context.Context, req *request, bearer string) (*response, error) {
	target := t.baseURL.ResolveReference(&url.URL{Path: req.path, RawQuery: req.query.Encode()})

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", req.operation)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if t.userAgent != "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}
	if bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+bearer)
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)

	log := deliverycontext.GetLoggerOrDefault(ctx, t.logger)
	start := time.Now()

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		t.metrics.ObserveBackend(req.operation, 0, time.Since(start))
		log.Warn("Backend unreachable",
			slog.String("operation", req.operation),
			slog.String("url", target.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrBackendUnavailable.WithDetails(err.Error()), req.operation)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	elapsed := time.Since(start)
	t.metrics.ObserveBackend(req.operation, httpResp.StatusCode, elapsed)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrBackendUnavailable.WithDetails(err.Error()), req.operation)
	}

	log.Debug("Backend request",
		slog.String("operation", req.operation),
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", httpResp.StatusCode),
		slog.Duration("latency", elapsed),
	)

	return &response{operation: req.operation, status: httpResp.StatusCode, body: data}, nil
}
