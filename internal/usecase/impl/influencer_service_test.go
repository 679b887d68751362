package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInfluencerService(t *testing.T) (
	usecase.InfluencerUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockInfluencerRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	influencerRepo := mockRepo.NewMockInfluencerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewInfluencerService(txManager, influencerRepo, logger)

	return service, txManager, influencerRepo
}

func TestInfluencerService_RegisterInfluencer_CreatesProfileAndGrantsRole(t *testing.T) {
	service, txManager, _ := createTestInfluencerService(t)

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfluencerRepo := mockRepo.NewMockInfluencerRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInfluencerRepository().Return(mockInfluencerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInfluencerRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(influencer *entity.Influencer) bool {
					return influencer.UserID == userID &&
						influencer.Status == entity.InfluencerStatusPending &&
						len(influencer.SocialAccounts) == 1
				})).
				Run(func(ctx context.Context, influencer *entity.Influencer) {
					influencer.ID = uuid.New()
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Role == entity.RoleInfluencer
				})).
				Return(nil)

			return fn(mockFactory)
		})

	influencer, err := service.RegisterInfluencer(ctx, userID, usecase.RegisterInfluencerInput{
		DisplayName: "creator_jane",
		Bio:         "Food and travel",
		SocialAccounts: []usecase.SocialAccountInput{
			{Platform: "instagram", Handle: "creator_jane", FollowerCount: 12000},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.InfluencerStatusPending, influencer.Status)
	assert.Equal(t, "instagram", influencer.SocialAccounts[0].Platform)
}

func TestInfluencerService_RegisterInfluencer_Duplicate(t *testing.T) {
	service, txManager, _ := createTestInfluencerService(t)

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfluencerRepo := mockRepo.NewMockInfluencerRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInfluencerRepository().Return(mockInfluencerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInfluencerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Influencer")).
				Return(repository.ErrInfluencerExists)

			return fn(mockFactory)
		})

	influencer, err := service.RegisterInfluencer(ctx, userID, usecase.RegisterInfluencerInput{
		DisplayName: "creator_jane",
	})

	assert.Error(t, err)
	assert.Nil(t, influencer)
	assert.True(t, errors.Is(err, domainerrors.ErrInfluencerAlreadyExists))
}

func TestInfluencerService_RegisterInfluencer_MissingDisplayName(t *testing.T) {
	service, _, _ := createTestInfluencerService(t)

	influencer, err := service.RegisterInfluencer(context.Background(), uuid.New(), usecase.RegisterInfluencerInput{})

	assert.Error(t, err)
	assert.Nil(t, influencer)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInfluencerService_UpdateProfile_SocialAccountsResetToPending(t *testing.T) {
	service, _, influencerRepo := createTestInfluencerService(t)

	ctx := context.Background()
	userID := uuid.New()
	influencerID := uuid.New()

	influencerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Influencer{
			ID:     influencerID,
			UserID: userID,
			Status: entity.InfluencerStatusApproved,
		}, nil)

	influencerRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(influencer *entity.Influencer) bool {
			return influencer.Status == entity.InfluencerStatusPending
		})).
		Return(nil)

	influencerRepo.EXPECT().
		ReplaceSocialAccounts(ctx, influencerID, mock.MatchedBy(func(accounts []entity.SocialAccount) bool {
			return len(accounts) == 1 && accounts[0].Platform == "tiktok"
		})).
		Return(nil)

	influencer, err := service.UpdateProfile(ctx, userID, usecase.UpdateInfluencerInput{
		SocialAccounts: []usecase.SocialAccountInput{
			{Platform: "tiktok", Handle: "jane_vt"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.InfluencerStatusPending, influencer.Status)
}

func TestInfluencerService_UpdateProfile_BioOnlyKeepsStatus(t *testing.T) {
	service, _, influencerRepo := createTestInfluencerService(t)

	ctx := context.Background()
	userID := uuid.New()
	newBio := "Updated bio"

	influencerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Influencer{
			ID:     uuid.New(),
			UserID: userID,
			Status: entity.InfluencerStatusApproved,
		}, nil)

	influencerRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(influencer *entity.Influencer) bool {
			return influencer.Status == entity.InfluencerStatusApproved && influencer.Bio == newBio
		})).
		Return(nil)

	influencer, err := service.UpdateProfile(ctx, userID, usecase.UpdateInfluencerInput{Bio: &newBio})

	require.NoError(t, err)
	assert.Equal(t, entity.InfluencerStatusApproved, influencer.Status)
}

func TestInfluencerService_ApproveInfluencer_UpgradesUserRole(t *testing.T) {
	service, txManager, _ := createTestInfluencerService(t)

	ctx := context.Background()
	influencerID := uuid.New()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfluencerRepo := mockRepo.NewMockInfluencerRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInfluencerRepository().Return(mockInfluencerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInfluencerRepo.EXPECT().
				FindByID(ctx, influencerID).
				Return(&entity.Influencer{
					ID:     influencerID,
					UserID: userID,
					Status: entity.InfluencerStatusPending,
				}, nil)

			mockInfluencerRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(influencer *entity.Influencer) bool {
					return influencer.Status == entity.InfluencerStatusApproved
				})).
				Return(nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Role == entity.RoleInfluencer
				})).
				Return(nil)

			return fn(mockFactory)
		})

	influencer, err := service.ApproveInfluencer(ctx, influencerID)

	require.NoError(t, err)
	assert.Equal(t, entity.InfluencerStatusApproved, influencer.Status)
}

func TestInfluencerService_ResetProfile_DeletesAndDemotesRole(t *testing.T) {
	service, txManager, _ := createTestInfluencerService(t)

	ctx := context.Background()
	influencerID := uuid.New()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfluencerRepo := mockRepo.NewMockInfluencerRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInfluencerRepository().Return(mockInfluencerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInfluencerRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.Influencer{
					ID:     influencerID,
					UserID: userID,
					Status: entity.InfluencerStatusApproved,
				}, nil)

			mockInfluencerRepo.EXPECT().
				Delete(ctx, influencerID).
				Return(nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Role: entity.RoleInfluencer}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Role == entity.RoleUser
				})).
				Return(nil)

			return fn(mockFactory)
		})

	err := service.ResetProfile(ctx, userID)

	require.NoError(t, err)
}

func TestInfluencerService_ResetProfile_NoProfile(t *testing.T) {
	service, txManager, _ := createTestInfluencerService(t)

	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfluencerRepo := mockRepo.NewMockInfluencerRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInfluencerRepository().Return(mockInfluencerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInfluencerRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(nil, repository.ErrInfluencerNotFound)

			return fn(mockFactory)
		})

	err := service.ResetProfile(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInfluencerNotFound))
}

func TestInfluencerService_ApproveInfluencer_NotFound(t *testing.T) {
	service, txManager, _ := createTestInfluencerService(t)

	ctx := context.Background()
	influencerID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfluencerRepo := mockRepo.NewMockInfluencerRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInfluencerRepository().Return(mockInfluencerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInfluencerRepo.EXPECT().
				FindByID(ctx, influencerID).
				Return(nil, repository.ErrInfluencerNotFound)

			return fn(mockFactory)
		})

	influencer, err := service.ApproveInfluencer(ctx, influencerID)

	assert.Error(t, err)
	assert.Nil(t, influencer)
	assert.True(t, errors.Is(err, domainerrors.ErrInfluencerNotFound))
}
