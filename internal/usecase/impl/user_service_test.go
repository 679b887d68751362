package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func refreshClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{UserID: userID, Type: service.TokenTypeRefresh}
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(
		txManager,
		hasher,
		tokenService,
		2,
		logger,
	)

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
}

func TestUserService_Register_AlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidateStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "weak",
	}

	fx.hasher.EXPECT().
		ValidateStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.LoginInput{Email: "test@example.com", Password: "Password123!"}
	user := &entity.User{ID: userID, Email: input.Email, Role: entity.RoleUser}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)

			fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(0, nil)

			fx.tokenService.EXPECT().
				GenerateTokens(userID, []string{"user"}).
				Return("access-token", "refresh-token", nil)
			fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
			fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.MatchedBy(func(session *entity.RefreshToken) bool {
					return session.UserID == userID && session.TokenHash == "refresh-hash"
				})).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "test@example.com", Password: "wrong"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)

			fx.hasher.EXPECT().Check(input.Password, "hashed").Return(false)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.LoginInput{Email: "test@example.com", Password: "Password123!"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)

			fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

			// The fixture service caps sessions at 2.
			mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(2, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestUserService_RefreshTokens_Rotation(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(refreshClaims(userID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "old-hash").
				Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash"}, nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

			mockRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)

			fx.tokenService.EXPECT().
				GenerateTokens(userID, []string{"user"}).
				Return("new-access", "new-refresh", nil)
			fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
			fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.MatchedBy(func(session *entity.RefreshToken) bool {
					return session.TokenHash == "new-hash"
				})).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshTokens(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_RefreshTokens_RevokedSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("revoked-refresh").
		Return(refreshClaims(userID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			fx.tokenService.EXPECT().HashToken("revoked-refresh").Return("revoked-hash")
			mockRefreshRepo.EXPECT().
				FindRefreshTokenByHash(ctx, "revoked-hash").
				Return(nil, repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshTokens(ctx, "revoked-refresh")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_ToleratesMissingSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			fx.tokenService.EXPECT().HashToken("gone-refresh").Return("gone-hash")
			mockRefreshRepo.EXPECT().
				DeleteRefreshTokenByHash(ctx, "gone-hash").
				Return(repository.ErrRefreshTokenNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Logout(ctx, "gone-refresh")

	assert.NoError(t, err)
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	newName := "New Name"
	newToken := "fcm-token-123"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Name: "Old Name", Role: entity.RoleUser}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Name == newName && user.FCMToken == newToken
				})).
				Return(nil)

			return fn(mockFactory)
		})

	user, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		Name:     &newName,
		FCMToken: &newToken,
	})

	require.NoError(t, err)
	assert.Equal(t, newName, user.Name)
	assert.Equal(t, newToken, user.FCMToken)
}
