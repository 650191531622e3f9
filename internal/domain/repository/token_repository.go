// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pos/internal/domain/entity"

	"github.com/pkg/errors"
)

// Fixed storage keys shared with every client of the same backend.
const (
	KeyAccessToken  = "jwt_token"
	KeyRefreshToken = "jwt_refresh"
	KeyLanguage     = "i18nextLng"
)

// ErrStorageUnavailable is returned by stores whose backing medium cannot be reached.
var ErrStorageUnavailable = errors.New("token storage unavailable")

// TokenRepository persists the two session tokens across restarts.
// Tokens are stored as opaque strings; no well-formedness checks are made.
type TokenRepository interface {
	// Save writes both tokens. An empty refresh token removes the stored one.
	Save(ctx context.Context, session entity.Session) error

	// Load returns the stored session. Missing keys, and a medium that cannot be read, yield empty strings.
	Load(ctx context.Context) entity.Session

	// Clear removes both tokens.
	Clear(ctx context.Context) error
}

// PreferenceRepository persists the preferred UI language.
type PreferenceRepository interface {
	SaveLanguage(ctx context.Context, code string) error

	// LoadLanguage returns "" when nothing was stored or the medium cannot be read.
	LoadLanguage(ctx context.Context) string
}

// KeyValueStore is the raw medium the repositories are built on.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
