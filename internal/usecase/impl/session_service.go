// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/lifecycle"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth     service.AuthAPI
	sessions service.SessionManager
	tokens   repository.TokenRepository
	claims   service.ClaimsDecoder
	profiles service.ProfileAPI
	events   service.EventBus
	timer    *refreshTimer
	now      func() time.Time
	logger   *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx
type SessionServiceParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Auth     service.AuthAPI
	Sessions service.SessionManager
	Tokens   repository.TokenRepository
	Claims   service.ClaimsDecoder
	Profiles service.ProfileAPI
	Events   service.EventBus
	Logger   *slog.Logger
}

// NewSessionService restores the persisted session on start and stops the refresh timer on shutdown.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := newSessionService(params)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			state := srv.Restore(ctx)
			srv.logger.Info("Session restored", slog.String("view", string(state.View)))

			return nil
		},
		OnStop: func(context.Context) error {
			srv.Stop()

			return nil
		},
	})

	return srv
}

func newSessionService(params SessionServiceParams) *sessionService {
	srv := &sessionService{
		auth:     params.Auth,
		sessions: params.Sessions,
		tokens:   params.Tokens,
		claims:   params.Claims,
		profiles: params.Profiles,
		events:   params.Events,
		now:      time.Now,
		logger:   params.Logger,
	}
	srv.timer = newRefreshTimer(params.Config.Session.RefreshInterval, srv.refreshTick, params.Logger)

	// the handler may run on the timer goroutine, so it must not wait for the loop
	params.Events.Subscribe(func(ctx context.Context, event entity.Event) {
		srv.timer.Cancel()
		srv.log(ctx).Info("Session expired, proactive refresh cancelled", slog.String("reason", event.Reason))
	}, entity.EventSessionExpired)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) refreshTick(ctx context.Context) error {
	_, err := srv.sessions.RefreshNow(ctx)

	return err
}

// Restore installs the persisted tokens. An expired access token is renewed right away when possible.
func (srv *sessionService) Restore(ctx context.Context) usecase.ViewState {
	session := srv.tokens.Load(ctx)
	if !session.IsAuthenticated() {
		srv.log(ctx).Debug("No persisted session")

		return srv.View(ctx)
	}

	if err := srv.sessions.Install(ctx, session, false); err != nil {
		srv.log(ctx).Warn("Failed to install persisted session", slog.Any("error", err))

		return srv.View(ctx)
	}

	if !session.CanRefresh() {
		return srv.View(ctx)
	}

	if user, ok := srv.claims.Decode(session.AccessToken); ok && user.IsExpired(srv.now()) {
		srv.log(ctx).Info("Persisted access token expired, refreshing")
		if _, err := srv.sessions.RefreshNow(ctx); err != nil {
			srv.log(ctx).Warn("Refresh at restore failed", slog.Any("error", err))

			return srv.View(ctx)
		}
	}

	srv.timer.Start()

	return srv.View(ctx)
}

// Login exchanges credentials for tokens and starts the proactive refresh when a refresh token was issued.
func (srv *sessionService) Login(ctx context.Context, credentials entity.Credentials) (usecase.ViewState, error) {
	srv.log(ctx).Debug("Logging in", slog.String("username", credentials.Username))

	pair, err := srv.auth.ObtainTokens(ctx, credentials)
	if err != nil {
		return srv.View(ctx), err
	}

	session := entity.Session{AccessToken: pair.Access, RefreshToken: pair.Refresh}
	if err := srv.sessions.Install(ctx, session, true); err != nil {
		// the session works for this run even if it cannot be persisted
		srv.log(ctx).Warn("Failed to persist session", slog.Any("error", err))
	}

	if session.CanRefresh() {
		srv.timer.Start()
	} else {
		srv.timer.Stop()
	}

	srv.events.Publish(ctx, entity.Event{Kind: entity.EventSessionStarted})
	srv.log(ctx).Info("Logged in", slog.String("username", credentials.Username))

	return srv.View(ctx), nil
}

// Logout stops the timer first so no refresh can reinstall the tokens being cleared
func (srv *sessionService) Logout(ctx context.Context) {
	srv.timer.Stop()

	if err := srv.sessions.Reset(ctx); err != nil {
		srv.log(ctx).Warn("Failed to clear stored session", slog.Any("error", err))
	}

	srv.events.Publish(ctx, entity.Event{Kind: entity.EventLoggedOut})
	srv.log(ctx).Info("Logged out")
}

func (srv *sessionService) View(ctx context.Context) usecase.ViewState {
	if !srv.IsAuthenticated(ctx) {
		return usecase.ViewState{View: usecase.ViewLogin}
	}
	user, ok := srv.CurrentUser(ctx)

	state := usecase.ViewState{
		View:             usecase.ViewApp,
		CanManageCatalog: true,
		RefreshScheduled: srv.timer.Running(),
	}
	if ok {
		state.User = user
		state.DisplayName = user.DisplayName()
		state.Initials = user.Initials()
		state.Role = user.Role()
		state.CanManageCatalog = user.CanManageCatalog()
	}

	return state
}

func (srv *sessionService) CurrentUser(_ context.Context) (*entity.AuthenticatedUser, bool) {
	session := srv.sessions.Session()
	if !session.IsAuthenticated() {
		return nil, false
	}

	return srv.claims.Decode(session.AccessToken)
}

func (srv *sessionService) IsAuthenticated(_ context.Context) bool {
	return srv.sessions.Session().IsAuthenticated()
}

func (srv *sessionService) Profile(ctx context.Context) (*entity.UserProfile, error) {
	if !srv.IsAuthenticated(ctx) {
		return nil, errors.WithStack(domainerrors.ErrLoginRequired)
	}

	profile, err := srv.profiles.GetProfile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

func (srv *sessionService) Stop() {
	srv.timer.Stop()
}
