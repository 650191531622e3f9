package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "pos/internal/delivery/context"
	domainerrors "pos/internal/domain/errors"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Client performs authenticated calls. A 401 is repaired through the RefreshCoordinator
// and the original request is replayed exactly once with the new token.
type Client struct {
	transport   *Transport
	creds       *Credentials
	coordinator *RefreshCoordinator
	logger      *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Transport   *Transport
	Creds       *Credentials
	Coordinator *RefreshCoordinator
	Logger      *slog.Logger
}

// NewClient is the constructor for Client
func NewClient(params ClientParams) *Client {
	return &Client{
		transport:   params.Transport,
		creds:       params.Creds,
		coordinator: params.Coordinator,
		logger:      params.Logger,
	}
}

func (c *Client) do(ctx context.Context, req *request, out any) error {
	token := c.creds.AccessToken()

	resp, err := c.transport.send(ctx, req, token)
	if err != nil {
		return err
	}

	if resp.status == http.StatusUnauthorized {
		resp, err = c.retryAfterRefresh(ctx, req, token)
		if err != nil {
			return err
		}
	}

	return resp.decode(out)
}

func (c *Client) retryAfterRefresh(ctx context.Context, req *request, staleToken string) (*response, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	if !c.creds.Get().CanRefresh() {
		log.Info("Request rejected and no refresh token available", slog.String("operation", req.operation))
		c.coordinator.ForceLogout(ctx, ReasonNoRefreshToken)

		return nil, errors.WithStack(domainerrors.ErrSessionExpired)
	}

	fresh, err := c.coordinator.Refresh(ctx, staleToken)
	if err != nil {
		return nil, err
	}

	resp, err := c.transport.send(ctx, req, fresh)
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusUnauthorized {
		log.Warn("Request rejected again after refresh", slog.String("operation", req.operation))
		c.coordinator.ForceLogout(ctx, ReasonRejectedAfterRefresh)

		return nil, errors.WithStack(domainerrors.ErrSessionExpired.WithDetails("rejected after refresh"))
	}

	return resp, nil
}

// decodeList accepts a bare JSON array or a paginated {"results": [...]} envelope
func decodeList[T any](ctx context.Context, c *Client, req *request) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, req, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '{' {
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil || page.Results == nil {
			return nil, errors.WithStack(domainerrors.ErrBackendUnavailable.WithDetails("unexpected list body for " + req.operation))
		}
		trimmed = page.Results
	}

	items := []T{}
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrBackendUnavailable.WithDetails(err.Error()), "decode %s list", req.operation)
	}

	return items, nil
}
