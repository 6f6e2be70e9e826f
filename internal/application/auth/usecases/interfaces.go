package usecases

import "helpdesk/internal/domain/user"

// TokenPair is an access/refresh token pair with the access TTL in seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenIssuer issues and verifies bearer tokens for authenticated actors.
type TokenIssuer interface {
	Generate(actor user.Actor) (*TokenPair, error)
	GenerateAccess(actor user.Actor) (string, error)
	// VerifyRefresh validates a refresh token and returns the actor it was
	// issued to. Access tokens are rejected.
	VerifyRefresh(tokenString string) (user.Actor, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}
