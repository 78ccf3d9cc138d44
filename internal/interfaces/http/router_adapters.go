package http

import (
	"devdesk/internal/application/auth/usecases"
	"devdesk/internal/infrastructure/auth"
)

// jwtServiceAdapter adapts auth.JWTService to the usecases.JWTService interface.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID string, sessionID string) (*usecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
