package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	revocations    auth.RevocationStore
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	revocations auth.RevocationStore,
) *UserService {
	if revocations == nil {
		revocations = auth.NoopRevocationStore{}
	}
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		revocations:    revocations,
		validate:       newValidator(),
	}
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,notblank"`
	LastName string `json:"last_name"`
	Info     string `json:"info"`
}

// Register creates an active, role-less user.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	return s.create(ctx, input, false)
}

// CreateSuperuser creates a user flagged as superuser, for operators bootstrapping
// an installation.
func (s *UserService) CreateSuperuser(ctx context.Context, input RegisterInput) (*model.User, error) {
	return s.create(ctx, input, true)
}

func (s *UserService) create(ctx context.Context, input RegisterInput, superuser bool) (*model.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(input.Name),
		LastName:     strings.TrimSpace(input.LastName),
		Info:         input.Info,
		IsActive:     true,
		IsSuperuser:  superuser,
	}

	// the unique index still decides races between concurrent registrations
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

type UpdateUserInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,notblank"`
	LastName *string `json:"last_name,omitempty"`
	Info     *string `json:"info,omitempty"`
}

// UpdateProfile applies the non-nil fields of input to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateUserInput) (*model.User, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Info != nil {
		user.Info = *input.Info
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
