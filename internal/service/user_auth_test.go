package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/mocks"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/service"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tm := auth.NewTokenManager("test-secret", time.Hour)

	input := service.RegisterInput{
		Email:    "  Jane@Example.com ",
		Password: "correct horse",
		Name:     "Jane",
		LastName: "Doe",
	}

	t.Run("creates active role-less user", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(userRepo, hasher, tm, nil)

		userRepo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(nil, domain.ErrUserNotFound)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *model.User) error {
				u.ID = uuid.New()
				return nil
			})

		user, err := svc.Register(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsSuperuser)
		assert.False(t, user.HasRole())

		ok, err := hasher.Verify(input.Password, user.PasswordHash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(userRepo, hasher, tm, nil)

		userRepo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(&model.User{}, nil)

		_, err := svc.Register(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("lost race on unique email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(userRepo, hasher, tm, nil)

		userRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserNotFound)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrEmailAlreadyExists)

		_, err := svc.Register(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("short password", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserRepositoryIface(ctrl), hasher, tm, nil)

		bad := input
		bad.Password = "short"
		_, err := svc.Register(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserLoginLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tm := auth.NewTokenManager("test-secret", time.Hour)

	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	user := &model.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: hash,
		Name:         "Test",
		IsActive:     true,
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	t.Run("login, authenticate, logout", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(userRepo, hasher, tm, auth.NewRedisRevocationStore(client))

		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		out, err := svc.Login(context.Background(), service.LoginInput{Email: "Test@Example.com", Password: "correct_password"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)

		got, claims, err := svc.Authenticate(context.Background(), out.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		require.NoError(t, svc.Logout(context.Background(), claims))

		_, _, err = svc.Authenticate(context.Background(), out.Token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(userRepo, hasher, tm, nil)

		userRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "wrong_password"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(userRepo, hasher, tm, nil)

		userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		_, err := svc.Login(context.Background(), service.LoginInput{Email: "nobody@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("deactivated after token was issued", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		svc := service.NewUserService(userRepo, hasher, tm, nil)

		token, err := tm.Generate(user.ID.String(), user.Email)
		require.NoError(t, err)

		inactive := *user
		inactive.IsActive = false
		userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(&inactive, nil)

		_, _, err = svc.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrInactiveUser)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := service.NewUserService(mocks.NewMockUserRepositoryIface(ctrl), hasher, tm, nil)

		_, _, err := svc.Authenticate(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestUserUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	svc := service.NewUserService(userRepo, auth.NewPasswordHasher(), auth.NewTokenManager("s", time.Hour), nil)

	user := &model.User{ID: uuid.New(), Name: "Old", LastName: "Name", Info: "keep"}
	userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	userRepo.EXPECT().Update(gomock.Any(), user).Return(nil)

	name := " New "
	got, err := svc.UpdateProfile(context.Background(), user.ID, service.UpdateUserInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "Name", got.LastName)
	assert.Equal(t, "keep", got.Info)
}
