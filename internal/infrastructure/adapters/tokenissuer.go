// Package adapters bridges infrastructure services to the interfaces the
// application layer defines.
package adapters

import (
	authuc "helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
)

// TokenIssuerAdapter exposes the JWT service through the application-layer
// token issuer interface.
type TokenIssuerAdapter struct {
	jwtService *auth.JWTService
}

func NewTokenIssuerAdapter(jwtService *auth.JWTService) authuc.TokenIssuer {
	return &TokenIssuerAdapter{jwtService: jwtService}
}

func (a *TokenIssuerAdapter) Generate(actor user.Actor) (*authuc.TokenPair, error) {
	pair, err := a.jwtService.Generate(actor)
	if err != nil {
		return nil, err
	}
	return &authuc.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *TokenIssuerAdapter) GenerateAccess(actor user.Actor) (string, error) {
	return a.jwtService.GenerateAccess(actor)
}

func (a *TokenIssuerAdapter) VerifyRefresh(tokenString string) (user.Actor, error) {
	claims, err := a.jwtService.VerifyRefresh(tokenString)
	if err != nil {
		return user.Actor{}, err
	}
	return claims.Actor(), nil
}
