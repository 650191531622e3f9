package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	mockUsecase "pos/internal/mocks/usecase"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSessionHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: discardLogger()})

	e := newTestEcho()
	e.GET("/app/view", h.View)
	e.POST("/app/session/login", h.Login)
	e.POST("/app/session/logout", h.Logout)
	e.GET("/app/session/me", h.Me)

	return e, sessionUC
}

func TestSessionHandler_Login(t *testing.T) {
	e, sessionUC := createTestSessionHandler(t)
	state := usecase.ViewState{View: usecase.ViewApp, DisplayName: "Ana", Role: entity.RoleAdmin, CanManageCatalog: true}

	sessionUC.EXPECT().Login(mock.Anything, entity.Credentials{Username: "ana", Password: "secreto"}).Return(state, nil)

	rec := serve(e, jsonRequest(http.MethodPost, "/app/session/login", `{"username":"ana","password":"secreto"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var got usecase.ViewState
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, state, got)
}

func TestSessionHandler_LoginRejectsIncompleteForm(t *testing.T) {
	e, _ := createTestSessionHandler(t)

	rec := serve(e, jsonRequest(http.MethodPost, "/app/session/login", `{"username":"ana"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "password: required", env.Error.Details)
}

func TestSessionHandler_LoginInvalidCredentials(t *testing.T) {
	e, sessionUC := createTestSessionHandler(t)

	sessionUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(usecase.ViewState{View: usecase.ViewLogin}, errors.WithStack(domainerrors.ErrInvalidCredentials.WithDetails("backend 401")))

	rec := serve(e, jsonRequest(http.MethodPost, "/app/session/login", `{"username":"ana","password":"x"}`))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestSessionHandler_LogoutReturnsLoginView(t *testing.T) {
	e, sessionUC := createTestSessionHandler(t)

	sessionUC.EXPECT().Logout(mock.Anything).Return()
	sessionUC.EXPECT().View(mock.Anything).Return(usecase.ViewState{View: usecase.ViewLogin})

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/app/session/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"view":"login","can_manage_catalog":false,"refresh_scheduled":false}`, string(decode(t, rec).Data))
}

func TestSessionHandler_Me(t *testing.T) {
	e, sessionUC := createTestSessionHandler(t)
	user := &entity.AuthenticatedUser{UserID: "7", Username: "ana"}
	profile := &entity.UserProfile{ID: 3, User: 7}

	sessionUC.EXPECT().Profile(mock.Anything).Return(profile, nil)
	sessionUC.EXPECT().CurrentUser(mock.Anything).Return(user, true)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/app/session/me", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got MeResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, "ana", got.User.Username)
	assert.Equal(t, 7, got.Profile.User)
}

func TestSessionHandler_MeAfterExpiry(t *testing.T) {
	e, sessionUC := createTestSessionHandler(t)

	sessionUC.EXPECT().Profile(mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrSessionExpired))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/app/session/me", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_EXPIRED", decode(t, rec).Error.Code)
}
