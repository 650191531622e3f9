package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/service"
	mockRepo "pos/internal/mocks/repository"
	mockService "pos/internal/mocks/service"
	"pos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service  *sessionService
	auth     *mockService.MockAuthAPI
	sessions *mockService.MockSessionManager
	tokens   *mockRepo.MockTokenRepository
	claims   *mockService.MockClaimsDecoder
	profiles *mockService.MockProfileAPI
	bus      service.EventBus
}

func createTestSessionService(t *testing.T, interval time.Duration) sessionServiceFixtures {
	t.Helper()

	cfg := testConfig()
	cfg.Session.RefreshInterval = interval

	fx := sessionServiceFixtures{
		auth:     mockService.NewMockAuthAPI(t),
		sessions: mockService.NewMockSessionManager(t),
		tokens:   mockRepo.NewMockTokenRepository(t),
		claims:   mockService.NewMockClaimsDecoder(t),
		profiles: mockService.NewMockProfileAPI(t),
		bus:      newBus(),
	}
	fx.service = newSessionService(SessionServiceParams{
		Config:   cfg,
		Auth:     fx.auth,
		Sessions: fx.sessions,
		Tokens:   fx.tokens,
		Claims:   fx.claims,
		Profiles: fx.profiles,
		Events:   fx.bus,
		Logger:   discardLogger(),
	})
	t.Cleanup(fx.service.Stop)

	return fx
}

func adminUser(expiresAt time.Time) *entity.AuthenticatedUser {
	return &entity.AuthenticatedUser{
		UserID:        "7",
		Username:      "ana",
		FirstName:     "Ana",
		LastName:      "Mora",
		Groups:        []string{entity.GroupAdministrator},
		ExpiresAt:     expiresAt,
		HasRoleClaims: true,
	}
}

func TestSessionService_Restore_NoPersistedSession(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	ctx := context.Background()

	fx.tokens.EXPECT().Load(ctx).Return(entity.Session{})
	fx.sessions.EXPECT().Session().Return(entity.Session{})

	state := fx.service.Restore(ctx)

	assert.Equal(t, usecase.ViewLogin, state.View)
	assert.Nil(t, state.User)
	assert.False(t, fx.service.timer.Running())
}

func TestSessionService_Restore_InstallsSessionAndSchedulesRefresh(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	ctx := context.Background()
	session := entity.Session{AccessToken: "access", RefreshToken: "refresh"}
	user := adminUser(time.Now().Add(10 * time.Minute))

	fx.tokens.EXPECT().Load(ctx).Return(session)
	fx.sessions.EXPECT().Install(ctx, session, false).Return(nil)
	fx.sessions.EXPECT().Session().Return(session)
	fx.claims.EXPECT().Decode("access").Return(user, true)

	state := fx.service.Restore(ctx)

	assert.Equal(t, usecase.ViewApp, state.View)
	assert.Equal(t, entity.RoleAdmin, state.Role)
	assert.Equal(t, "ana", state.DisplayName)
	assert.Equal(t, "AM", state.Initials)
	assert.True(t, state.CanManageCatalog)
	assert.True(t, state.RefreshScheduled)
}

func TestSessionService_Restore_RefreshesExpiredAccessToken(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	ctx := context.Background()
	session := entity.Session{AccessToken: "stale", RefreshToken: "refresh"}
	renewed := entity.Session{AccessToken: "fresh", RefreshToken: "refresh"}

	fx.tokens.EXPECT().Load(ctx).Return(session)
	fx.sessions.EXPECT().Install(ctx, session, false).Return(nil)
	fx.claims.EXPECT().Decode("stale").Return(adminUser(time.Now().Add(-time.Minute)), true)
	fx.sessions.EXPECT().RefreshNow(ctx).Return("fresh", nil)
	fx.sessions.EXPECT().Session().Return(renewed)
	fx.claims.EXPECT().Decode("fresh").Return(adminUser(time.Now().Add(time.Minute)), true)

	state := fx.service.Restore(ctx)

	assert.Equal(t, usecase.ViewApp, state.View)
	assert.True(t, state.RefreshScheduled)
}

func TestSessionService_Restore_WithoutRefreshTokenSkipsTimer(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	ctx := context.Background()
	session := entity.Session{AccessToken: "access"}

	fx.tokens.EXPECT().Load(ctx).Return(session)
	fx.sessions.EXPECT().Install(ctx, session, false).Return(nil)
	fx.sessions.EXPECT().Session().Return(session)
	fx.claims.EXPECT().Decode("access").Return(nil, false)

	state := fx.service.Restore(ctx)

	assert.Equal(t, usecase.ViewApp, state.View)
	assert.Nil(t, state.User)
	assert.True(t, state.CanManageCatalog, "undecodable tokens are left to the backend")
	assert.False(t, state.RefreshScheduled)
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	ctx := context.Background()
	started := recordEvents(fx.bus, entity.EventSessionStarted)
	creds := entity.Credentials{Username: "ana", Password: "secret"}
	session := entity.Session{AccessToken: "access", RefreshToken: "refresh"}

	fx.auth.EXPECT().ObtainTokens(ctx, creds).Return(&entity.TokenPair{Access: "access", Refresh: "refresh"}, nil)
	fx.sessions.EXPECT().Install(ctx, session, true).Return(nil)
	fx.sessions.EXPECT().Session().Return(session)
	fx.claims.EXPECT().Decode("access").Return(adminUser(time.Time{}), true)

	state, err := fx.service.Login(ctx, creds)
	require.NoError(t, err)

	assert.Equal(t, usecase.ViewApp, state.View)
	assert.True(t, state.RefreshScheduled)
	assert.Equal(t, []entity.EventKind{entity.EventSessionStarted}, started.Kinds())
}

func TestSessionService_Login_PersistFailureKeepsSession(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	ctx := context.Background()
	session := entity.Session{AccessToken: "access"}

	fx.auth.EXPECT().ObtainTokens(ctx, mock.Anything).Return(&entity.TokenPair{Access: "access"}, nil)
	fx.sessions.EXPECT().Install(ctx, session, true).Return(errors.New("disk full"))
	fx.sessions.EXPECT().Session().Return(session)
	fx.claims.EXPECT().Decode("access").Return(nil, false)

	state, err := fx.service.Login(ctx, entity.Credentials{Username: "ana", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, usecase.ViewApp, state.View)
	assert.False(t, state.RefreshScheduled)
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	ctx := context.Background()
	started := recordEvents(fx.bus, entity.EventSessionStarted)

	fx.auth.EXPECT().ObtainTokens(ctx, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))
	fx.sessions.EXPECT().Session().Return(entity.Session{})

	state, err := fx.service.Login(ctx, entity.Credentials{Username: "ana", Password: "nope"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, usecase.ViewLogin, state.View)
	assert.Empty(t, started.Kinds())
}

func TestSessionService_Logout(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	ctx := context.Background()
	loggedOut := recordEvents(fx.bus, entity.EventLoggedOut)
	fx.service.timer.Start()

	fx.sessions.EXPECT().Reset(ctx).Return(errors.New("storage unavailable"))

	fx.service.Logout(ctx)

	assert.False(t, fx.service.timer.Running())
	assert.Equal(t, []entity.EventKind{entity.EventLoggedOut}, loggedOut.Kinds())
}

func TestSessionService_SessionExpiredCancelsTimer(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	fx.service.timer.Start()
	require.True(t, fx.service.timer.Running())

	fx.bus.Publish(context.Background(), entity.Event{Kind: entity.EventSessionExpired, Reason: "refresh_failed"})

	assert.False(t, fx.service.timer.Running())
}

func TestSessionService_TimerRefreshesProactively(t *testing.T) {
	fx := createTestSessionService(t, 10*time.Millisecond)

	var calls atomic.Int32
	fx.sessions.EXPECT().RefreshNow(mock.Anything).RunAndReturn(func(context.Context) (string, error) {
		calls.Add(1)

		return "fresh", nil
	})

	fx.service.timer.Start()
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	fx.service.Stop()
	after := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no refresh after Stop returns")
}

func TestSessionService_Profile(t *testing.T) {
	fx := createTestSessionService(t, time.Hour)
	ctx := context.Background()

	fx.sessions.EXPECT().Session().Return(entity.Session{}).Once()
	_, err := fx.service.Profile(ctx)
	require.ErrorIs(t, err, domainerrors.ErrLoginRequired)

	image := "http://media/ana.png"
	fx.sessions.EXPECT().Session().Return(entity.Session{AccessToken: "access"}).Once()
	fx.profiles.EXPECT().GetProfile(ctx).Return(&entity.UserProfile{ID: 1, User: 7, Imagen: &image}, nil)

	profile, err := fx.service.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, profile.User)
}
