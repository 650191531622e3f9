package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticatedUser_DisplayNameAndInitials(t *testing.T) {
	tests := []struct {
		name     string
		user     AuthenticatedUser
		display  string
		initials string
	}{
		{"username wins", AuthenticatedUser{Username: "ana", Email: "a@x.com", FirstName: "Ana", LastName: "Mora"}, "ana", "AM"},
		{"email fallback", AuthenticatedUser{Email: "b@x.com"}, "b@x.com", "B"},
		{"nothing", AuthenticatedUser{}, "N/A", "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.display, tt.user.DisplayName())
			assert.Equal(t, tt.initials, tt.user.Initials())
		})
	}
}

func TestAuthenticatedUser_Role(t *testing.T) {
	assert.Equal(t, RoleAdmin, (&AuthenticatedUser{IsSuperuser: true}).Role())
	assert.Equal(t, RoleAdmin, (&AuthenticatedUser{Groups: []string{"Vendedor", "Administrador"}}).Role())
	assert.Equal(t, RoleVendor, (&AuthenticatedUser{Groups: []string{"Vendedor"}}).Role())
	assert.Equal(t, RoleStaff, (&AuthenticatedUser{Groups: []string{"otro"}}).Role())
}

func TestAuthenticatedUser_CanManageCatalog(t *testing.T) {
	assert.True(t, (&AuthenticatedUser{}).CanManageCatalog())
	assert.False(t, (&AuthenticatedUser{HasRoleClaims: true, Groups: []string{"Vendedor"}}).CanManageCatalog())
	assert.True(t, (&AuthenticatedUser{HasRoleClaims: true, Groups: []string{"Administrador"}}).CanManageCatalog())
}

func TestSession_RotateKeepsRefreshUnlessReplaced(t *testing.T) {
	s := Session{AccessToken: "a1", RefreshToken: "r1"}

	assert.Equal(t, Session{AccessToken: "a2", RefreshToken: "r1"}, s.Rotate(TokenPair{Access: "a2"}))
	assert.Equal(t, Session{AccessToken: "a3", RefreshToken: "r2"}, s.Rotate(TokenPair{Access: "a3", Refresh: "r2"}))
}

func TestBusinessConfiguration_Normalizes(t *testing.T) {
	var cfg BusinessConfiguration
	require.NoError(t, json.Unmarshal([]byte(`{"nombre_restaurante":"Soda Tica","telefono":null}`), &cfg))

	assert.Equal(t, "es", cfg.Idioma)
	assert.Equal(t, "Soda Tica", cfg.NombreRestaurante)
	assert.Equal(t, "", cfg.Telefono)
	assert.NotContains(t, cfg.JSONPayload(), "logo")
}
