package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// influencerService implements the InfluencerUsecase interface.
type influencerService struct {
	txManager      repository.TransactionManager
	influencerRepo repository.InfluencerRepository
	logger         *slog.Logger
}

// NewInfluencerService is the constructor for influencerService.
func NewInfluencerService(
	txManager repository.TransactionManager,
	influencerRepo repository.InfluencerRepository,
	logger *slog.Logger,
) usecase.InfluencerUsecase {
	return &influencerService{
		txManager:      txManager,
		influencerRepo: influencerRepo,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *influencerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterInfluencer creates a pending influencer profile for the user and
// grants the influencer role, atomically. The unique index on user_id turns
// a second registration into ErrInfluencerExists.
func (srv *influencerService) RegisterInfluencer(ctx context.Context, userID uuid.UUID, input usecase.RegisterInfluencerInput) (*entity.Influencer, error) {
	if input.DisplayName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("display name is required")
	}

	influencer := &entity.Influencer{
		UserID:         userID,
		DisplayName:    input.DisplayName,
		Bio:            input.Bio,
		Status:         entity.InfluencerStatusPending,
		SocialAccounts: toSocialAccounts(input.SocialAccounts),
	}

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		influencerRepo := txRepoFactory.NewInfluencerRepository()
		userRepo := txRepoFactory.NewUserRepository()

		if err := influencerRepo.Create(ctx, influencer); err != nil {
			if errors.Is(err, repository.ErrInfluencerExists) {
				return domainerrors.ErrInfluencerAlreadyExists.WrapMessage("register rejected")
			}

			return errors.Wrap(err, "failed to create influencer profile")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find registering user")
		}
		if user.Role != entity.RoleInfluencer {
			user.Role = entity.RoleInfluencer
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to upgrade user role")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Influencer profile registered",
		slog.Any("influencerID", influencer.ID),
		slog.Any("userID", userID),
	)

	return influencer, nil
}

// GetInfluencer retrieves a single influencer profile by its ID.
func (srv *influencerService) GetInfluencer(ctx context.Context, influencerID uuid.UUID) (*entity.Influencer, error) {
	influencer, err := srv.influencerRepo.FindByID(ctx, influencerID)
	if err != nil {
		if errors.Is(err, repository.ErrInfluencerNotFound) {
			return nil, domainerrors.ErrInfluencerNotFound.WrapMessage("get influencer failed")
		}

		return nil, errors.Wrap(err, "failed to find influencer")
	}

	return influencer, nil
}

// GetOwnProfile retrieves the caller's own influencer profile.
func (srv *influencerService) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*entity.Influencer, error) {
	influencer, err := srv.influencerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrInfluencerNotFound) {
			return nil, domainerrors.ErrInfluencerNotFound.WrapMessage("get own profile failed")
		}

		return nil, errors.Wrap(err, "failed to find influencer profile")
	}

	return influencer, nil
}

// ListInfluencers retrieves influencer profiles matching the given filter.
func (srv *influencerService) ListInfluencers(ctx context.Context, input usecase.ListInfluencersInput) (*usecase.InfluencerListOutput, error) {
	influencers, total, err := srv.influencerRepo.List(ctx, repository.InfluencerListFilter{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list influencers")
	}

	return &usecase.InfluencerListOutput{Influencers: influencers, Total: total}, nil
}

// UpdateProfile applies a partial update to the caller's influencer profile.
// Replacing the social account set drops the profile back to pending review.
func (srv *influencerService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateInfluencerInput) (*entity.Influencer, error) {
	influencer, err := srv.GetOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		influencer.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		influencer.Bio = *input.Bio
	}
	if input.SocialAccounts != nil {
		influencer.Status = entity.InfluencerStatusPending
	}

	if err := srv.influencerRepo.Update(ctx, influencer); err != nil {
		return nil, errors.Wrap(err, "failed to update influencer profile")
	}

	if input.SocialAccounts != nil {
		accounts := toSocialAccounts(input.SocialAccounts)
		if err := srv.influencerRepo.ReplaceSocialAccounts(ctx, influencer.ID, accounts); err != nil {
			return nil, errors.Wrap(err, "failed to replace social accounts")
		}
		influencer.SocialAccounts = accounts
		srv.log(ctx).Info("Influencer profile reset to pending after social account change",
			slog.Any("influencerID", influencer.ID))
	}

	return influencer, nil
}

// ApproveInfluencer moves a pending profile to approved and upgrades the
// underlying user's role, atomically.
func (srv *influencerService) ApproveInfluencer(ctx context.Context, influencerID uuid.UUID) (*entity.Influencer, error) {
	var approved *entity.Influencer
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		influencerRepo := txRepoFactory.NewInfluencerRepository()
		userRepo := txRepoFactory.NewUserRepository()

		influencer, err := influencerRepo.FindByID(ctx, influencerID)
		if err != nil {
			if errors.Is(err, repository.ErrInfluencerNotFound) {
				return domainerrors.ErrInfluencerNotFound.WrapMessage("approve rejected")
			}

			return errors.Wrap(err, "failed to find influencer")
		}

		influencer.Status = entity.InfluencerStatusApproved
		if err := influencerRepo.Update(ctx, influencer); err != nil {
			return errors.Wrap(err, "failed to approve influencer")
		}

		user, err := userRepo.FindByID(ctx, influencer.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find influencer user")
		}
		if user.Role != entity.RoleInfluencer {
			user.Role = entity.RoleInfluencer
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to upgrade user role")
			}
		}

		approved = influencer

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Influencer approved", slog.Any("influencerID", influencerID))

	return approved, nil
}

// ResetProfile deletes the caller's influencer profile and demotes the user
// back to a regular role, atomically.
func (srv *influencerService) ResetProfile(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		influencerRepo := txRepoFactory.NewInfluencerRepository()
		userRepo := txRepoFactory.NewUserRepository()

		influencer, err := influencerRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrInfluencerNotFound) {
				return domainerrors.ErrInfluencerNotFound.WrapMessage("reset rejected")
			}

			return errors.Wrap(err, "failed to find influencer profile")
		}

		if err := influencerRepo.Delete(ctx, influencer.ID); err != nil {
			return errors.Wrap(err, "failed to delete influencer profile")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find influencer user")
		}
		if user.Role != entity.RoleUser {
			user.Role = entity.RoleUser
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to demote user role")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Influencer profile reset", slog.Any("userID", userID))

	return nil
}

// toSocialAccounts converts social account inputs to domain entities.
func toSocialAccounts(inputs []usecase.SocialAccountInput) []entity.SocialAccount {
	accounts := make([]entity.SocialAccount, 0, len(inputs))
	for _, input := range inputs {
		accounts = append(accounts, entity.SocialAccount{
			Platform:      input.Platform,
			Handle:        input.Handle,
			URL:           input.URL,
			FollowerCount: input.FollowerCount,
		})
	}

	return accounts
}
