// Package dto holds the auth response shapes returned to HTTP clients.
package dto

import "time"

// UserView is the public projection of a user. The password hash never
// leaves the persistence layer.
type UserView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User         UserView `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int64    `json:"expiresIn"`
}

// RefreshResult is returned by the token refresh operation.
type RefreshResult struct {
	AccessToken string `json:"accessToken"`
}
