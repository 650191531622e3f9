package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret-the-client-never-sees"))
	require.NoError(t, err)

	return token
}

func newDecoder() *jwtClaimsDecoder {
	return NewClaimsDecoder(slog.New(slog.NewTextHandler(io.Discard, nil))).(*jwtClaimsDecoder)
}

func TestClaimsDecoder_DecodesBackendPayload(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"token_type": "access",
		"user_id":    42,
		"username":   "cajero1",
		"first_name": "Luis",
		"last_name":  "Vargas",
		"exp":        exp.Unix(),
	})

	user, ok := newDecoder().Decode(token)

	require.True(t, ok)
	assert.Equal(t, "42", user.UserID)
	assert.Equal(t, "cajero1", user.DisplayName())
	assert.Equal(t, "LV", user.Initials())
	assert.True(t, exp.Equal(user.ExpiresAt))
	assert.False(t, user.HasRoleClaims)
	assert.True(t, user.CanManageCatalog())
}

func TestClaimsDecoder_RoleClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"user_id": "7",
		"groups":  []string{"Vendedor"},
	})

	user, ok := newDecoder().Decode(token)

	require.True(t, ok)
	assert.Equal(t, "7", user.UserID)
	assert.True(t, user.HasRoleClaims)
	assert.False(t, user.CanManageCatalog())
}

func TestClaimsDecoder_ExpiredTokenStillDecodes(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"username": "viejo",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	user, ok := newDecoder().Decode(token)

	require.True(t, ok)
	assert.True(t, user.IsExpired(time.Now()))
}

func TestClaimsDecoder_RejectsGarbage(t *testing.T) {
	decoder := newDecoder()

	for _, token := range []string{"", "   ", "not-a-jwt", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.bm90LWpzb24.sig"} {
		user, ok := decoder.Decode(token)
		assert.False(t, ok, token)
		assert.Nil(t, user)
	}
}
