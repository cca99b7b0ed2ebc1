package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/google/uuid"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	// Find the user
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}

	if !verified || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	// Generate token
	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{
		User:  user,
		Token: token,
	}, nil
}

// Logout revokes the token described by claims until it expires.
func (s *UserService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return domain.ErrUnauthorized
	}
	if err := s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

// Authenticate turns a bearer token into the active user it was issued for.
func (s *UserService) Authenticate(ctx context.Context, token string) (*model.User, *auth.Claims, error) {
	claims, err := s.tokenManager.Validate(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("checking revocation: %w", err)
	}
	if revoked {
		return nil, nil, fmt.Errorf("%w: token revoked", domain.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad subject", domain.ErrUnauthorized)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, fmt.Errorf("%w: unknown user", domain.ErrUnauthorized)
		}
		return nil, nil, err
	}
	if !user.IsActive {
		return nil, nil, domain.ErrInactiveUser
	}

	return user, claims, nil
}
