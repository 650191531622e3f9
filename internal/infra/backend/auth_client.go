package backend

import (
	"context"
	"net/http"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	pathObtainToken  = "token/"
	pathRefreshToken = "token/refresh/"
)

// authClient calls the token endpoints. It never attaches a bearer and never retries.
type authClient struct {
	transport *Transport
}

// NewAuthClient is the constructor for authClient
func NewAuthClient(transport *Transport) service.AuthAPI {
	return &authClient{transport: transport}
}

func (a *authClient) ObtainTokens(ctx context.Context, credentials entity.Credentials) (*entity.TokenPair, error) {
	req, err := newJSONRequest("obtain_tokens", http.MethodPost, pathObtainToken, credentials)
	if err != nil {
		return nil, err
	}

	resp, err := a.transport.send(ctx, req, "")
	if err != nil {
		return nil, err
	}

	// SimpleJWT answers bad credentials with 401 (and sometimes 400 with non_field_errors)
	if resp.status == http.StatusUnauthorized {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if resp.status == http.StatusBadRequest {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, decodeError(resp.status, resp.body).Error())
	}

	var pair entity.TokenPair
	if err := resp.decode(&pair); err != nil {
		return nil, err
	}
	if pair.Access == "" {
		return nil, errors.WithStack(domainerrors.ErrBackendUnavailable.WithDetails("token response without access token"))
	}

	return &pair, nil
}

func (a *authClient) RefreshTokens(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	req, err := newJSONRequest("refresh_tokens", http.MethodPost, pathRefreshToken, map[string]string{"refresh": refreshToken})
	if err != nil {
		return nil, err
	}

	resp, err := a.transport.send(ctx, req, "")
	if err != nil {
		return nil, err
	}

	var pair entity.TokenPair
	if err := resp.decode(&pair); err != nil {
		return nil, err
	}
	if pair.Access == "" {
		return nil, errors.New("refresh response without access token")
	}

	return &pair, nil
}
