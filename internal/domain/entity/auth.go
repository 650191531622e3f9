// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Session is the pair of bearer credentials issued by the backend.
// An empty string stands for an absent token.
type Session struct {
	AccessToken  string `json:"access"`  // Short-lived token attached to every authenticated request.
	RefreshToken string `json:"refresh"` // Long-lived token exchanged for a new access token.
}

// IsAuthenticated reports whether an access token is present.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// CanRefresh reports whether the session can be renewed without credentials.
func (s Session) CanRefresh() bool {
	return s.RefreshToken != ""
}

// Rotate applies a refresh response. The refresh token is replaced only when the backend rotated it.
func (s Session) Rotate(pair TokenPair) Session {
	next := Session{AccessToken: pair.Access, RefreshToken: s.RefreshToken}
	if pair.Refresh != "" {
		next.RefreshToken = pair.Refresh
	}

	return next
}

// TokenPair is the body returned by the token endpoints.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// Credentials is the login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
