package entity

import (
	"strings"
	"time"
)

// AuthenticatedUser is decoded from the access token payload without verifying the signature.
// It is advisory only and drives what the client shows; the backend remains the authority.
type AuthenticatedUser struct {
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Groups      []string  `json:"groups"`
	IsSuperuser bool      `json:"is_superuser"`
	ExpiresAt   time.Time `json:"expires_at"`

	// HasRoleClaims is false when the token carries neither groups nor the superuser flag
	HasRoleClaims bool `json:"-"`
}

// DisplayName picks the first non-empty identity field, falling back to "N/A".
func (u *AuthenticatedUser) DisplayName() string {
	for _, candidate := range []string{u.Username, u.Email} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}

	return "N/A"
}

// Initials builds up to two uppercase letters from the full name, or from the display name.
func (u *AuthenticatedUser) Initials() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.DisplayName()
	}
	if name == "N/A" {
		return "?"
	}

	var initials []rune
	for _, part := range strings.Fields(name) {
		initials = append(initials, []rune(strings.ToUpper(part))[0])
		if len(initials) == 2 {
			break
		}
	}

	return string(initials)
}

// Role derives the user's role from the token claims.
func (u *AuthenticatedUser) Role() Role {
	if u.IsSuperuser {
		return RoleAdmin
	}

	roles := RolesFromGroups(u.Groups)
	for _, role := range []Role{RoleAdmin, RoleVendor, RoleCourier, RoleCustomer} {
		if roles.Contains(role) {
			return role
		}
	}

	return RoleStaff
}

// CanManageCatalog reports whether admin surfaces should be offered.
// Tokens without role claims are let through and left to the backend to reject.
func (u *AuthenticatedUser) CanManageCatalog() bool {
	if !u.HasRoleClaims {
		return true
	}

	return u.Role() == RoleAdmin
}

// IsExpired reports whether the token's exp claim is in the past.
func (u *AuthenticatedUser) IsExpired(now time.Time) bool {
	return !u.ExpiresAt.IsZero() && now.After(u.ExpiresAt)
}

// UserProfile is the backend profile of the logged-in user.
type UserProfile struct {
	ID     int     `json:"id"`
	User   int     `json:"user"`
	Imagen *string `json:"imagen"`
}
