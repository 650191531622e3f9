package backend

import (
	"pos/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the backend client FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewTransport,
		NewCredentials,
		NewAuthClient,
		NewRefreshCoordinator,
		NewClient,
		func(c *RefreshCoordinator) service.SessionManager { return c },
		func(c *Client) service.CatalogAPI { return c },
		func(c *Client) service.ProfileAPI { return c },
		func(c *Client) service.ConfigurationAPI { return c },
	),
)
