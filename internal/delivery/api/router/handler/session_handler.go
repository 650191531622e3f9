package handler

import (
	"log/slog"
	"net/http"

	"pos/internal/delivery/api/response"
	"pos/internal/domain/entity"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves the top-level view and the login/logout transitions
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MeResponse combines the advisory token claims with the backend profile
type MeResponse struct {
	User    *entity.AuthenticatedUser `json:"user,omitempty"`
	Profile *entity.UserProfile       `json:"profile"`
}

// View reports whether the login screen or the application should be shown
func (h *SessionHandler) View(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.View(c.Request().Context()))
}

// Login exchanges the credentials for tokens
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	state, err := h.sessionUC.Login(c.Request().Context(), entity.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Logout discards the session and returns the login view
func (h *SessionHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	h.sessionUC.Logout(ctx)

	return response.Success(c, http.StatusOK, h.sessionUC.View(ctx))
}

// Me returns the claims of the held token and the profile from the backend
func (h *SessionHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.sessionUC.Profile(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	user, _ := h.sessionUC.CurrentUser(ctx)

	return response.Success(c, http.StatusOK, MeResponse{User: user, Profile: profile})
}
