package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// campaignService implements the CampaignUsecase interface.
type campaignService struct {
	txManager      repository.TransactionManager
	campaignRepo   repository.CampaignRepository
	storeRepo      repository.StoreRepository
	productRepo    repository.ProductRepository
	influencerRepo repository.InfluencerRepository
	userRepo       repository.UserRepository
	eventPublisher service.EventPublisher
	pushService    service.PushService
	logger         *slog.Logger
}

// NewCampaignService is the constructor for campaignService.
func NewCampaignService(
	txManager repository.TransactionManager,
	campaignRepo repository.CampaignRepository,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	influencerRepo repository.InfluencerRepository,
	userRepo repository.UserRepository,
	eventPublisher service.EventPublisher,
	pushService service.PushService,
	logger *slog.Logger,
) usecase.CampaignUsecase {
	return &campaignService{
		txManager:      txManager,
		campaignRepo:   campaignRepo,
		storeRepo:      storeRepo,
		productRepo:    productRepo,
		influencerRepo: influencerRepo,
		userRepo:       userRepo,
		eventPublisher: eventPublisher,
		pushService:    pushService,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCampaign creates a draft campaign in the caller's store.
func (srv *campaignService) CreateCampaign(ctx context.Context, ownerID uuid.UUID, input usecase.CreateCampaignInput) (*entity.Campaign, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown campaign type")
	}

	if err := srv.requireStoreOwner(ctx, ownerID, input.StoreID); err != nil {
		return nil, err
	}
	if err := srv.validateCampaignProduct(ctx, input.StoreID, input.Type, input.ProductID); err != nil {
		return nil, err
	}

	campaign := &entity.Campaign{
		StoreID:          input.StoreID,
		Title:            input.Title,
		Description:      input.Description,
		Budget:           input.Budget,
		Currency:         input.Currency,
		Status:           entity.CampaignStatusDraft,
		Type:             input.Type,
		ProductID:        input.ProductID,
		TypeSpecificData: input.TypeSpecificData,
	}

	if err := srv.campaignRepo.Create(ctx, campaign); err != nil {
		srv.log(ctx).Error("Failed to create campaign", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Campaign created",
		slog.Any("campaignID", campaign.ID),
		slog.String("type", string(campaign.Type)),
	)

	return campaign, nil
}

// GetCampaign retrieves a single campaign by its ID.
func (srv *campaignService) GetCampaign(ctx context.Context, campaignID uuid.UUID) (*entity.Campaign, error) {
	campaign, err := srv.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrCampaignNotFound.WrapMessage("get campaign failed")
		}

		return nil, errors.Wrap(err, "failed to find campaign")
	}

	return campaign, nil
}

// ListCampaigns retrieves campaigns matching the given filter.
func (srv *campaignService) ListCampaigns(ctx context.Context, input usecase.ListCampaignsInput) (*usecase.CampaignListOutput, error) {
	campaigns, total, err := srv.campaignRepo.List(ctx, repository.CampaignListFilter{
		StoreID: input.StoreID,
		Status:  input.Status,
		Type:    input.Type,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return &usecase.CampaignListOutput{Campaigns: campaigns, Total: total}, nil
}

// UpdateCampaign applies a partial update to a draft campaign.
// TypeSpecificData is merged key by key rather than replaced wholesale.
func (srv *campaignService) UpdateCampaign(ctx context.Context, ownerID, campaignID uuid.UUID, input usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	campaign, err := srv.requireOwnedCampaign(ctx, ownerID, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != entity.CampaignStatusDraft {
		return nil, domainerrors.ErrCampaignNotDraft.WrapMessage("update rejected")
	}

	if input.Title != nil {
		campaign.Title = *input.Title
	}
	if input.Description != nil {
		campaign.Description = *input.Description
	}
	if input.Budget != nil {
		campaign.Budget = *input.Budget
	}
	if input.Currency != nil {
		campaign.Currency = *input.Currency
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown campaign type")
		}
		campaign.Type = *input.Type
	}
	if input.ProductID != nil {
		campaign.ProductID = input.ProductID
	}
	if input.TypeSpecificData != nil {
		if campaign.TypeSpecificData == nil {
			campaign.TypeSpecificData = make(map[string]any, len(input.TypeSpecificData))
		}
		for key, value := range input.TypeSpecificData {
			campaign.TypeSpecificData[key] = value
		}
	}

	if err := srv.validateCampaignProduct(ctx, campaign.StoreID, campaign.Type, campaign.ProductID); err != nil {
		return nil, err
	}

	if err := srv.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "failed to update campaign")
	}

	return campaign, nil
}

// PublishCampaign transitions a complete draft campaign to PUBLISHED and
// emits a campaign.published event.
func (srv *campaignService) PublishCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (*entity.Campaign, error) {
	campaign, err := srv.requireOwnedCampaign(ctx, ownerID, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != entity.CampaignStatusDraft {
		return nil, domainerrors.ErrCampaignNotDraft.WrapMessage("publish rejected")
	}
	if campaign.Title == "" || campaign.Budget <= 0 {
		return nil, domainerrors.ErrCampaignIncomplete.WrapMessage("publish rejected")
	}

	now := time.Now()
	campaign.Status = entity.CampaignStatusPublished
	campaign.PublishedAt = &now

	if err := srv.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, errors.Wrap(err, "failed to publish campaign")
	}
	srv.log(ctx).Info("Campaign published", slog.Any("campaignID", campaign.ID))

	srv.publishEvent(ctx, constants.EventCampaignPublished, map[string]string{
		"campaign_id": campaign.ID.String(),
		"store_id":    campaign.StoreID.String(),
	})
	srv.broadcastCampaign(ctx, campaign)

	return campaign, nil
}

// broadcastCampaign pushes a newly published campaign to every influencer
// device, best-effort. FCM caps one multicast at 500 tokens.
func (srv *campaignService) broadcastCampaign(ctx context.Context, campaign *entity.Campaign) {
	tokens, err := srv.userRepo.FindFCMTokensByRole(ctx, entity.RoleInfluencer)
	if err != nil {
		srv.log(ctx).Warn("Failed to load influencer push tokens", slog.Any("error", err))

		return
	}

	pushData := map[string]string{"campaign_id": campaign.ID.String()}
	for len(tokens) > 0 {
		batch := tokens
		if len(batch) > 500 {
			batch = tokens[:500]
		}
		tokens = tokens[len(batch):]

		_, failed, _, err := srv.pushService.SendBatchPush(ctx, batch, "新活動上線", campaign.Title, pushData)
		if err != nil {
			srv.log(ctx).Warn("Failed to broadcast campaign push", slog.Any("error", err))

			return
		}
		if failed > 0 {
			srv.log(ctx).Warn("Campaign push partially failed", slog.Int("failed", failed))
		}
	}
}

// DeleteCampaign removes a draft campaign together with its applications.
func (srv *campaignService) DeleteCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) error {
	campaign, err := srv.requireOwnedCampaign(ctx, ownerID, campaignID)
	if err != nil {
		return err
	}
	if campaign.Status != entity.CampaignStatusDraft {
		return domainerrors.ErrCampaignNotDraft.WrapMessage("delete rejected")
	}

	if err := srv.campaignRepo.Delete(ctx, campaignID); err != nil {
		return errors.Wrap(err, "failed to delete campaign")
	}
	srv.log(ctx).Info("Campaign deleted", slog.Any("campaignID", campaignID))

	return nil
}

// ApplyToCampaign submits an application by an approved influencer to a
// published campaign. The unique index on (campaign, influencer) turns a
// repeat application into ErrDuplicateApplication.
func (srv *campaignService) ApplyToCampaign(ctx context.Context, userID uuid.UUID, input usecase.ApplyToCampaignInput) (*entity.CampaignApplication, error) {
	influencer, err := srv.influencerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrInfluencerNotFound) {
			return nil, domainerrors.ErrInfluencerNotFound.WrapMessage("apply rejected")
		}

		return nil, errors.Wrap(err, "failed to find influencer profile")
	}
	if influencer.Status != entity.InfluencerStatusApproved {
		return nil, domainerrors.ErrInfluencerNotApproved.WrapMessage("apply rejected")
	}

	campaign, err := srv.GetCampaign(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != entity.CampaignStatusPublished {
		return nil, domainerrors.ErrCampaignNotPublished.WrapMessage("apply rejected")
	}

	application := &entity.CampaignApplication{
		CampaignID:   campaign.ID,
		InfluencerID: influencer.ID,
		Status:       entity.ApplicationStatusApplied,
		Message:      input.Message,
		AppliedAt:    time.Now(),
	}
	if err := srv.campaignRepo.CreateApplication(ctx, application); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return nil, domainerrors.ErrDuplicateApplication.WrapMessage("apply rejected")
		}

		return nil, errors.Wrap(err, "failed to create application")
	}
	srv.log(ctx).Info("Campaign application submitted",
		slog.Any("campaignID", campaign.ID),
		slog.Any("influencerID", influencer.ID),
	)

	return application, nil
}

// ListApplications retrieves all applications for a campaign owned by the caller.
func (srv *campaignService) ListApplications(ctx context.Context, ownerID, campaignID uuid.UUID) ([]*entity.CampaignApplication, error) {
	if _, err := srv.requireOwnedCampaign(ctx, ownerID, campaignID); err != nil {
		return nil, err
	}

	applications, err := srv.campaignRepo.FindApplicationsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return applications, nil
}

// ListOwnApplications retrieves the caller's own campaign applications.
func (srv *campaignService) ListOwnApplications(ctx context.Context, userID uuid.UUID) ([]*entity.CampaignApplication, error) {
	influencer, err := srv.influencerRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrInfluencerNotFound) {
			return nil, domainerrors.ErrInfluencerNotFound.WrapMessage("list applications rejected")
		}

		return nil, errors.Wrap(err, "failed to find influencer profile")
	}

	applications, err := srv.campaignRepo.FindApplicationsByInfluencer(ctx, influencer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return applications, nil
}

// SelectInfluencer marks an application as SELECTED and records an in-app
// notification for the influencer in the same transaction. Push delivery and
// the domain event happen after commit; their failure never rolls back the
// selection.
func (srv *campaignService) SelectInfluencer(ctx context.Context, ownerID, campaignID, applicationID uuid.UUID) (*entity.CampaignApplication, error) {
	campaign, err := srv.requireOwnedCampaign(ctx, ownerID, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != entity.CampaignStatusPublished {
		return nil, domainerrors.ErrCampaignNotPublished.WrapMessage("select rejected")
	}

	var (
		application    *entity.CampaignApplication
		influencerUser *entity.User
	)
	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		campaignRepo := txRepoFactory.NewCampaignRepository()
		influencerRepo := txRepoFactory.NewInfluencerRepository()
		notificationRepo := txRepoFactory.NewNotificationRepository()
		userRepo := txRepoFactory.NewUserRepository()

		found, err := campaignRepo.FindApplicationByID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, repository.ErrApplicationNotFound) {
				return domainerrors.ErrApplicationNotFound.WrapMessage("select rejected")
			}

			return errors.Wrap(err, "failed to find application")
		}
		if found.CampaignID != campaignID {
			return domainerrors.ErrApplicationNotFound.WrapMessage("application belongs to another campaign")
		}
		if found.Status == entity.ApplicationStatusSelected {
			return domainerrors.ErrInfluencerAlreadySelected.WrapMessage("select rejected")
		}

		now := time.Now()
		found.Status = entity.ApplicationStatusSelected
		found.SelectedAt = &now
		if err := campaignRepo.UpdateApplication(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update application")
		}

		influencer, err := influencerRepo.FindByID(ctx, found.InfluencerID)
		if err != nil {
			return errors.Wrap(err, "failed to find influencer")
		}
		user, err := userRepo.FindByID(ctx, influencer.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find influencer user")
		}

		notification := &entity.Notification{
			UserID: user.ID,
			Type:   entity.NotificationTypeCampaignSelected,
			Title:  "你已獲選參與活動",
			Body:   campaign.Title,
			Data: map[string]string{
				"campaign_id": campaign.ID.String(),
			},
		}
		if err := notificationRepo.Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}

		application = found
		influencerUser = user

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Influencer selected",
		slog.Any("campaignID", campaignID),
		slog.Any("applicationID", applicationID),
	)

	if influencerUser.FCMToken != "" {
		pushData := map[string]string{"campaign_id": campaign.ID.String()}
		if err := srv.pushService.SendPush(ctx, influencerUser.FCMToken, "你已獲選參與活動", campaign.Title, pushData); err != nil {
			srv.log(ctx).Warn("Failed to send selection push", slog.Any("error", err))
		}
	}

	srv.publishEvent(ctx, constants.EventCampaignInfluencerSelected, map[string]string{
		"campaign_id":    campaign.ID.String(),
		"application_id": application.ID.String(),
		"influencer_id":  application.InfluencerID.String(),
	})

	return application, nil
}

// publishEvent emits a domain event, logging instead of failing the caller.
func (srv *campaignService) publishEvent(ctx context.Context, name string, attributes map[string]string) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       name,
		OccurredAt: time.Now(),
		Attributes: attributes,
	}
	if err := srv.eventPublisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish domain event",
			slog.String("event", name), slog.Any("error", err))
	}
}

// requireStoreOwner verifies the caller owns the given store.
func (srv *campaignService) requireStoreOwner(ctx context.Context, ownerID, storeID uuid.UUID) error {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound.WrapMessage("store lookup failed")
		}

		return errors.Wrap(err, "failed to find store")
	}
	if store.OwnerID != ownerID {
		return domainerrors.ErrStoreOwnershipViolation.WrapMessage("store access denied")
	}

	return nil
}

// requireOwnedCampaign loads a campaign and verifies the caller owns its store.
func (srv *campaignService) requireOwnedCampaign(ctx context.Context, ownerID, campaignID uuid.UUID) (*entity.Campaign, error) {
	campaign, err := srv.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err := srv.requireStoreOwner(ctx, ownerID, campaign.StoreID); err != nil {
		if errors.Is(err, domainerrors.ErrStoreOwnershipViolation) {
			return nil, domainerrors.ErrCampaignOwnershipViolation.WrapMessage("campaign access denied")
		}

		return nil, err
	}

	return campaign, nil
}

// validateCampaignProduct checks that a PRODUCT campaign referencing a
// listing points at one of the same store. The reference itself is optional;
// a draft may be created before the listing exists.
func (srv *campaignService) validateCampaignProduct(ctx context.Context, storeID uuid.UUID, campaignType entity.CampaignType, productID *uuid.UUID) error {
	if campaignType != entity.CampaignTypeProduct || productID == nil {
		return nil
	}

	product, err := srv.productRepo.FindByID(ctx, *productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("campaign product lookup failed")
		}

		return errors.Wrap(err, "failed to find campaign product")
	}
	if product.StoreID != storeID {
		return domainerrors.ErrProductOwnershipViolation.WrapMessage("campaign product belongs to another store")
	}

	return nil
}
