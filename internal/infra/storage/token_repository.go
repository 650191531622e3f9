// Package storage persists the session tokens and the language preference.
package storage

import (
	"context"
	"log/slog"

	"pos/internal/domain/entity"
	"pos/internal/domain/repository"

	"github.com/pkg/errors"
)

type tokenRepository struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// NewTokenRepository stores tokens under the fixed jwt_token / jwt_refresh keys
func NewTokenRepository(store repository.KeyValueStore, logger *slog.Logger) repository.TokenRepository {
	return &tokenRepository{store: store, logger: logger}
}

func (r *tokenRepository) Save(ctx context.Context, session entity.Session) error {
	if session.AccessToken == "" {
		return r.Clear(ctx)
	}

	if err := r.store.Set(ctx, repository.KeyAccessToken, session.AccessToken); err != nil {
		return errors.Wrap(err, "save access token")
	}

	if session.RefreshToken == "" {
		return errors.Wrap(r.store.Delete(ctx, repository.KeyRefreshToken), "drop refresh token")
	}

	return errors.Wrap(r.store.Set(ctx, repository.KeyRefreshToken, session.RefreshToken), "save refresh token")
}

func (r *tokenRepository) Load(ctx context.Context) entity.Session {
	var session entity.Session

	access, _, err := r.store.Get(ctx, repository.KeyAccessToken)
	if err != nil {
		r.logger.Warn("Token storage unreadable, starting logged out", slog.Any("error", err))

		return entity.Session{}
	}
	session.AccessToken = access

	refresh, _, err := r.store.Get(ctx, repository.KeyRefreshToken)
	if err != nil {
		r.logger.Warn("Refresh token unreadable", slog.Any("error", err))

		return session
	}
	session.RefreshToken = refresh

	return session
}

func (r *tokenRepository) Clear(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, repository.KeyAccessToken, repository.KeyRefreshToken), "clear tokens")
}

type preferenceRepository struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// NewPreferenceRepository stores the language code under the i18nextLng key
func NewPreferenceRepository(store repository.KeyValueStore, logger *slog.Logger) repository.PreferenceRepository {
	return &preferenceRepository{store: store, logger: logger}
}

func (r *preferenceRepository) SaveLanguage(ctx context.Context, code string) error {
	return errors.Wrap(r.store.Set(ctx, repository.KeyLanguage, code), "save language")
}

func (r *preferenceRepository) LoadLanguage(ctx context.Context) string {
	code, _, err := r.store.Get(ctx, repository.KeyLanguage)
	if err != nil {
		r.logger.Warn("Language preference unreadable", slog.Any("error", err))

		return ""
	}

	return code
}
