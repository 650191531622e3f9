package middleware

import (
	"log/slog"

	deliverycontext "pos/internal/delivery/context"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionMiddleware gates app shell routes on the held session
type SessionMiddleware struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx
type SessionMiddlewareParams struct {
	fx.In

	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		session: params.Session,
		logger:  params.Logger,
	}
}

// RequireSession rejects requests while no access token is held and stores the decoded user
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if !m.session.IsAuthenticated(ctx) {
			return errors.WithStack(domainerrors.ErrLoginRequired)
		}

		if user, ok := m.session.CurrentUser(ctx); ok {
			deliverycontext.SetUser(c, user)
		}

		return next(c)
	}
}

// RequireAdmin allows catalog and configuration management. It must be used after RequireSession.
// The check is advisory: the backend enforces the real permission on every write.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := deliverycontext.GetUser(c)
		if !ok {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Admin route without decodable token")

			return errors.WithStack(domainerrors.ErrForbidden.WithDetails("access token could not be decoded"))
		}

		if !user.CanManageCatalog() {
			return errors.WithStack(domainerrors.ErrForbidden.WithDetails("role " + user.Role().String()))
		}

		return next(c)
	}
}
