package service

import (
	"context"

	"pos/internal/domain/entity"
)

// SessionManager owns the credentials attached to backend requests.
// Install and Reset serialize with an in-flight refresh so a cleared token is never reused.
type SessionManager interface {
	// Install makes session current; persist also writes it to the token store
	Install(ctx context.Context, session entity.Session, persist bool) error

	// Reset ends the session without publishing a session-expired event
	Reset(ctx context.Context) error

	// Session returns the current credentials
	Session() entity.Session

	// RefreshNow renews the access token through the shared refresh protocol
	RefreshNow(ctx context.Context) (string, error)
}
