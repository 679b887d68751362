package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

// campaignServiceFixtures holds all test dependencies for campaign service tests.
type campaignServiceFixtures struct {
	service        usecase.CampaignUsecase
	txManager      *mockRepo.MockTransactionManager
	campaignRepo   *mockRepo.MockCampaignRepository
	storeRepo      *mockRepo.MockStoreRepository
	productRepo    *mockRepo.MockProductRepository
	influencerRepo *mockRepo.MockInfluencerRepository
	userRepo       *mockRepo.MockUserRepository
	eventPublisher *mockSvc.MockEventPublisher
	pushService    *mockSvc.MockPushService
}

func createTestCampaignService(t *testing.T) campaignServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	influencerRepo := mockRepo.NewMockInfluencerRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	pushService := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCampaignService(
		txManager,
		campaignRepo,
		storeRepo,
		productRepo,
		influencerRepo,
		userRepo,
		eventPublisher,
		pushService,
		logger,
	)

	return campaignServiceFixtures{
		service:        svc,
		txManager:      txManager,
		campaignRepo:   campaignRepo,
		storeRepo:      storeRepo,
		productRepo:    productRepo,
		influencerRepo: influencerRepo,
		userRepo:       userRepo,
		eventPublisher: eventPublisher,
		pushService:    pushService,
	}
}

func TestCampaignService_CreateCampaign_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	fx.campaignRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(campaign *entity.Campaign) bool {
			return campaign.Status == entity.CampaignStatusDraft && campaign.Type == entity.CampaignTypeProfile
		})).
		Run(func(ctx context.Context, campaign *entity.Campaign) {
			campaign.ID = uuid.New()
		}).
		Return(nil)

	campaign, err := fx.service.CreateCampaign(ctx, ownerID, usecase.CreateCampaignInput{
		StoreID: storeID,
		Title:   "Spring Promo",
		Budget:  1000,
		Type:    entity.CampaignTypeProfile,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusDraft, campaign.Status)
}

func TestCampaignService_CreateCampaign_ProductTypeWithoutProduct(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	// No product reference yet; the draft is still valid.
	fx.campaignRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(campaign *entity.Campaign) bool {
			return campaign.Type == entity.CampaignTypeProduct && campaign.ProductID == nil
		})).
		Run(func(ctx context.Context, campaign *entity.Campaign) {
			campaign.ID = uuid.New()
		}).
		Return(nil)

	campaign, err := fx.service.CreateCampaign(ctx, ownerID, usecase.CreateCampaignInput{
		StoreID: storeID,
		Title:   "Product Promo",
		Budget:  100,
		Type:    entity.CampaignTypeProduct,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusDraft, campaign.Status)
}

func TestCampaignService_CreateCampaign_ProductOfAnotherStore(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	productID := uuid.New()

	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, StoreID: uuid.New()}, nil)

	campaign, err := fx.service.CreateCampaign(ctx, ownerID, usecase.CreateCampaignInput{
		StoreID:   storeID,
		Title:     "Product Promo",
		Type:      entity.CampaignTypeProduct,
		ProductID: &productID,
	})

	assert.Error(t, err)
	assert.Nil(t, campaign)
	assert.True(t, errors.Is(err, domainerrors.ErrProductOwnershipViolation))
}

func TestCampaignService_UpdateCampaign_MergesTypeSpecificData(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaignID := uuid.New()

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{
			ID:      campaignID,
			StoreID: storeID,
			Status:  entity.CampaignStatusDraft,
			Type:    entity.CampaignTypeDiscount,
			TypeSpecificData: map[string]any{
				"discount_code": "SPRING10",
				"percent_off":   float64(10),
			},
		}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	fx.campaignRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Campaign")).
		Return(nil)

	campaign, err := fx.service.UpdateCampaign(ctx, ownerID, campaignID, usecase.UpdateCampaignInput{
		TypeSpecificData: map[string]any{"percent_off": float64(20)},
	})

	require.NoError(t, err)
	assert.Equal(t, "SPRING10", campaign.TypeSpecificData["discount_code"])
	assert.Equal(t, float64(20), campaign.TypeSpecificData["percent_off"])
}

func TestCampaignService_UpdateCampaign_NotDraft(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaignID := uuid.New()

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{
			ID:      campaignID,
			StoreID: storeID,
			Status:  entity.CampaignStatusPublished,
		}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	newTitle := "Renamed"
	campaign, err := fx.service.UpdateCampaign(ctx, ownerID, campaignID, usecase.UpdateCampaignInput{
		Title: &newTitle,
	})

	assert.Error(t, err)
	assert.Nil(t, campaign)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignNotDraft))
}

func TestCampaignService_PublishCampaign_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaignID := uuid.New()

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{
			ID:      campaignID,
			StoreID: storeID,
			Status:  entity.CampaignStatusDraft,
			Title:   "Spring Promo",
			Budget:  500,
		}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	fx.campaignRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(campaign *entity.Campaign) bool {
			return campaign.Status == entity.CampaignStatusPublished && campaign.PublishedAt != nil
		})).
		Return(nil)

	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Name == "campaign.published" && event.Attributes["campaign_id"] == campaignID.String()
		})).
		Return(nil)

	fx.userRepo.EXPECT().
		FindFCMTokensByRole(ctx, entity.RoleInfluencer).
		Return([]string{"token-a", "token-b"}, nil)
	fx.pushService.EXPECT().
		SendBatchPush(ctx, []string{"token-a", "token-b"}, "新活動上線", "Spring Promo", mock.Anything).
		Return(2, 0, nil, nil)

	campaign, err := fx.service.PublishCampaign(ctx, ownerID, campaignID)

	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusPublished, campaign.Status)
	assert.NotNil(t, campaign.PublishedAt)
}

func TestCampaignService_PublishCampaign_BroadcastFailureDoesNotBlock(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaignID := uuid.New()

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{
			ID:      campaignID,
			StoreID: storeID,
			Status:  entity.CampaignStatusDraft,
			Title:   "Test",
			Budget:  100,
		}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)
	fx.campaignRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Campaign")).
		Return(nil)
	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	fx.userRepo.EXPECT().
		FindFCMTokensByRole(ctx, entity.RoleInfluencer).
		Return(nil, errors.New("db unavailable"))

	campaign, err := fx.service.PublishCampaign(ctx, ownerID, campaignID)

	require.NoError(t, err)
	assert.Equal(t, entity.CampaignStatusPublished, campaign.Status)
}

func TestCampaignService_PublishCampaign_Incomplete(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaignID := uuid.New()

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{
			ID:      campaignID,
			StoreID: storeID,
			Status:  entity.CampaignStatusDraft,
			Title:   "",
			Budget:  0,
		}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	campaign, err := fx.service.PublishCampaign(ctx, ownerID, campaignID)

	assert.Error(t, err)
	assert.Nil(t, campaign)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignIncomplete))
}

func TestCampaignService_ApplyToCampaign_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	influencerID := uuid.New()
	campaignID := uuid.New()

	fx.influencerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Influencer{ID: influencerID, UserID: userID, Status: entity.InfluencerStatusApproved}, nil)

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{ID: campaignID, Status: entity.CampaignStatusPublished}, nil)

	fx.campaignRepo.EXPECT().
		CreateApplication(ctx, mock.MatchedBy(func(application *entity.CampaignApplication) bool {
			return application.CampaignID == campaignID &&
				application.InfluencerID == influencerID &&
				application.Status == entity.ApplicationStatusApplied
		})).
		Return(nil)

	application, err := fx.service.ApplyToCampaign(ctx, userID, usecase.ApplyToCampaignInput{
		CampaignID: campaignID,
		Message:    "I love this brand",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusApplied, application.Status)
	assert.False(t, application.AppliedAt.IsZero())
}

func TestCampaignService_ApplyToCampaign_NotApproved(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.influencerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Influencer{ID: uuid.New(), UserID: userID, Status: entity.InfluencerStatusPending}, nil)

	application, err := fx.service.ApplyToCampaign(ctx, userID, usecase.ApplyToCampaignInput{
		CampaignID: uuid.New(),
	})

	assert.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrInfluencerNotApproved))
}

func TestCampaignService_ApplyToCampaign_NotPublished(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	campaignID := uuid.New()

	fx.influencerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Influencer{ID: uuid.New(), UserID: userID, Status: entity.InfluencerStatusApproved}, nil)

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{ID: campaignID, Status: entity.CampaignStatusDraft}, nil)

	application, err := fx.service.ApplyToCampaign(ctx, userID, usecase.ApplyToCampaignInput{
		CampaignID: campaignID,
	})

	assert.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignNotPublished))
}

func TestCampaignService_ApplyToCampaign_Duplicate(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	userID := uuid.New()
	campaignID := uuid.New()

	fx.influencerRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Influencer{ID: uuid.New(), UserID: userID, Status: entity.InfluencerStatusApproved}, nil)

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{ID: campaignID, Status: entity.CampaignStatusPublished}, nil)

	fx.campaignRepo.EXPECT().
		CreateApplication(ctx, mock.AnythingOfType("*entity.CampaignApplication")).
		Return(repository.ErrDuplicateApplication)

	application, err := fx.service.ApplyToCampaign(ctx, userID, usecase.ApplyToCampaignInput{
		CampaignID: campaignID,
	})

	assert.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateApplication))
}

func TestCampaignService_SelectInfluencer_Success(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaignID := uuid.New()
	applicationID := uuid.New()
	influencerID := uuid.New()
	influencerUserID := uuid.New()

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{
			ID:      campaignID,
			StoreID: storeID,
			Status:  entity.CampaignStatusPublished,
			Title:   "Spring Promo",
		}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
			mockInfluencerRepo := mockRepo.NewMockInfluencerRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewCampaignRepository().Return(mockCampaignRepo)
			mockFactory.EXPECT().NewInfluencerRepository().Return(mockInfluencerRepo)
			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockCampaignRepo.EXPECT().
				FindApplicationByID(ctx, applicationID).
				Return(&entity.CampaignApplication{
					ID:           applicationID,
					CampaignID:   campaignID,
					InfluencerID: influencerID,
					Status:       entity.ApplicationStatusApplied,
				}, nil)

			mockCampaignRepo.EXPECT().
				UpdateApplication(ctx, mock.MatchedBy(func(application *entity.CampaignApplication) bool {
					return application.Status == entity.ApplicationStatusSelected && application.SelectedAt != nil
				})).
				Return(nil)

			mockInfluencerRepo.EXPECT().
				FindByID(ctx, influencerID).
				Return(&entity.Influencer{ID: influencerID, UserID: influencerUserID}, nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, influencerUserID).
				Return(&entity.User{ID: influencerUserID, FCMToken: "device-token"}, nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
					return notification.UserID == influencerUserID &&
						notification.Type == entity.NotificationTypeCampaignSelected
				})).
				Return(nil)

			return fn(mockFactory)
		})

	fx.pushService.EXPECT().
		SendPush(ctx, "device-token", mock.Anything, "Spring Promo", mock.Anything).
		Return(nil)

	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Name == "campaign.influencer_selected" &&
				event.Attributes["application_id"] == applicationID.String()
		})).
		Return(nil)

	application, err := fx.service.SelectInfluencer(ctx, ownerID, campaignID, applicationID)

	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusSelected, application.Status)
	assert.NotNil(t, application.SelectedAt)
}

func TestCampaignService_SelectInfluencer_AlreadySelected(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	storeID := uuid.New()
	campaignID := uuid.New()
	applicationID := uuid.New()

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{
			ID:      campaignID,
			StoreID: storeID,
			Status:  entity.CampaignStatusPublished,
		}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: ownerID}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
			mockInfluencerRepo := mockRepo.NewMockInfluencerRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewCampaignRepository().Return(mockCampaignRepo)
			mockFactory.EXPECT().NewInfluencerRepository().Return(mockInfluencerRepo)
			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockCampaignRepo.EXPECT().
				FindApplicationByID(ctx, applicationID).
				Return(&entity.CampaignApplication{
					ID:         applicationID,
					CampaignID: campaignID,
					Status:     entity.ApplicationStatusSelected,
				}, nil)

			return fn(mockFactory)
		})

	application, err := fx.service.SelectInfluencer(ctx, ownerID, campaignID, applicationID)

	assert.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrInfluencerAlreadySelected))
}

func TestCampaignService_DeleteCampaign_NotOwner(t *testing.T) {
	fx := createTestCampaignService(t)

	ctx := context.Background()
	storeID := uuid.New()
	campaignID := uuid.New()

	fx.campaignRepo.EXPECT().
		FindByID(ctx, campaignID).
		Return(&entity.Campaign{ID: campaignID, StoreID: storeID, Status: entity.CampaignStatusDraft}, nil)
	fx.storeRepo.EXPECT().
		FindByID(ctx, storeID).
		Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

	err := fx.service.DeleteCampaign(ctx, uuid.New(), campaignID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCampaignOwnershipViolation))
}
