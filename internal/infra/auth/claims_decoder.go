// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"log/slog"
	"strings"

	"pos/internal/domain/entity"
	"pos/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims mirrors the payload the backend puts in its access tokens.
type accessClaims struct {
	UserID      any      `json:"user_id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Groups      []string `json:"groups"`
	IsSuperuser *bool    `json:"is_superuser"`
	jwt.RegisteredClaims
}

// jwtClaimsDecoder decodes access tokens without a key. It must never be used to authorize anything.
type jwtClaimsDecoder struct {
	parser *jwt.Parser
	logger *slog.Logger
}

// NewClaimsDecoder is the constructor for jwtClaimsDecoder.
func NewClaimsDecoder(logger *slog.Logger) service.ClaimsDecoder {
	return &jwtClaimsDecoder{
		parser: jwt.NewParser(jwt.WithJSONNumber()),
		logger: logger,
	}
}

// Decode returns the claims of accessToken, or false if it is empty or malformed.
func (d *jwtClaimsDecoder) Decode(accessToken string) (*entity.AuthenticatedUser, bool) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, false
	}

	var claims accessClaims
	if _, _, err := d.parser.ParseUnverified(accessToken, &claims); err != nil {
		d.logger.Debug("Access token payload not decodable", slog.Any("error", err))

		return nil, false
	}

	user := &entity.AuthenticatedUser{
		Username:      claims.Username,
		Email:         claims.Email,
		FirstName:     claims.FirstName,
		LastName:      claims.LastName,
		Groups:        claims.Groups,
		HasRoleClaims: claims.Groups != nil || claims.IsSuperuser != nil,
	}
	if claims.UserID != nil {
		user.UserID = fmt.Sprint(claims.UserID)
	}
	if claims.IsSuperuser != nil {
		user.IsSuperuser = *claims.IsSuperuser
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Time
	}
	if user.UserID == "" && claims.Subject != "" {
		user.UserID = claims.Subject
	}

	return user, true
}
