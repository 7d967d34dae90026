package usecase

import (
	"holidaze-booking/internal/domain/user"
	"holidaze-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity is the authenticated caller. Email doubles as the booking-owner
// identifier throughout the core.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  user.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  role,
	}, nil
}
