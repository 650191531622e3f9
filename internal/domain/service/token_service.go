package service

import (
	"pos/internal/domain/entity"
)

// ClaimsDecoder reads the access token payload without verifying its signature.
// The result is advisory: it drives what the client shows, never what the backend allows.
type ClaimsDecoder interface {
	// Decode returns false when the token is empty or not a decodable JWT
	Decode(accessToken string) (*entity.AuthenticatedUser, bool)
}
