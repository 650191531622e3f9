// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pos/internal/domain/entity"
)

// View is the top-level screen the app shell should show.
type View string

const (
	// ViewLogin is shown exclusively while no access token is held.
	ViewLogin View = "login"
	// ViewApp is the authenticated application.
	ViewApp View = "app"
)

// ViewState describes what the app shell renders for the current session.
type ViewState struct {
	View             View                      `json:"view"`
	User             *entity.AuthenticatedUser `json:"user,omitempty"`
	DisplayName      string                    `json:"display_name,omitempty"`
	Initials         string                    `json:"initials,omitempty"`
	Role             entity.Role               `json:"role,omitempty"`
	CanManageCatalog bool                      `json:"can_manage_catalog"`
	RefreshScheduled bool                      `json:"refresh_scheduled"`
}

// SessionUsecase defines the login/logout transitions and the proactive refresh lifecycle.
type SessionUsecase interface {
	// Restore loads persisted tokens at startup. A missing or unreadable store yields the login view.
	Restore(ctx context.Context) ViewState
	Login(ctx context.Context, credentials entity.Credentials) (ViewState, error)
	// Logout never fails locally; storage errors are logged.
	Logout(ctx context.Context)
	View(ctx context.Context) ViewState
	// CurrentUser decodes the held access token. The result is advisory.
	CurrentUser(ctx context.Context) (*entity.AuthenticatedUser, bool)
	IsAuthenticated(ctx context.Context) bool
	Profile(ctx context.Context) (*entity.UserProfile, error)
	// Stop cancels the proactive refresh timer and waits for it to exit.
	Stop()
}
