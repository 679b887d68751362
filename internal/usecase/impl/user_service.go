// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultMaxActiveSessions = 5

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	maxActiveSessions int,
	logger *slog.Logger,
) usecase.UserUsecase {
	if maxActiveSessions <= 0 {
		maxActiveSessions = defaultMaxActiveSessions
	}

	return &userService{
		txManager:         txManager,
		hasher:            hasher,
		tokenService:      tokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var registeredUser *entity.User

	// Execute the entire creation process within a single database transaction
	// to ensure data consistency (atomicity).
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		// 1. Check if an authentication method with this email already exists.
		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			// If no error, it means an auth record was found.
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		// 2. Create the User entity.
		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
			Role:  entity.RoleUser,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 3. Create the Authentication entity (the email/password credential).
		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute user registration transaction",
			slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}
	srv.log(ctx).Debug("User registered successfully", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process and opens a new session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Starting login", slog.String("email", input.Email))

	var output *usecase.LoginOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		// 1. Look up the email credential. Missing credentials and wrong
		// passwords are indistinguishable on the outside.
		auth, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		if !srv.hasher.Check(input.Password, auth.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		user, err := userRepo.FindByID(ctx, auth.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		// 2. Enforce the concurrent session cap.
		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return domainerrors.ErrSessionLimitExceeded.WrapMessage("login failed")
		}

		// 3. Issue tokens and persist the refresh token hash.
		accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		session := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create refresh token")
		}

		output = &usecase.LoginOutput{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         user,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}
	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", output.User.ID))

	return output, nil
}

// RefreshTokens rotates a valid refresh token into a new token pair.
func (srv *userService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh failed")
	}

	var output *usecase.RefreshOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		// 1. The stored hash must still exist; otherwise the session was revoked.
		oldHash := srv.tokenService.HashToken(refreshToken)
		session, err := refreshRepo.FindRefreshTokenByHash(ctx, oldHash)
		if err != nil {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh failed")
		}
		if session.UserID != claims.UserID {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh failed")
		}

		user, err := userRepo.FindByID(ctx, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		// 2. Rotate: delete the old session, issue and persist a new one.
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, oldHash); err != nil {
			return errors.Wrap(err, "failed to revoke old refresh token")
		}

		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.Roles{user.Role}.ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newSession := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newSession); err != nil {
			return errors.Wrap(err, "failed to create refresh token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Logout ends the session identified by the given refresh token.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		err := refreshRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(err, "failed to delete refresh token")
		}

		// Logging out an already-revoked session is not an error.
		return nil
	})
}

// GetProfile retrieves the profile of the given user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("get profile failed")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfile applies the given partial update to the user's profile.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("update profile failed")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.AvatarURL != nil {
			found.AvatarURL = *input.AvatarURL
		}
		if input.FCMToken != nil {
			found.FCMToken = *input.FCMToken
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
