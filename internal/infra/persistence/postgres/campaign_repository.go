// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// campaignRepository implements the repository.CampaignRepository interface using GORM.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// Create persists a new campaign entity to the database.
func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignM, err := fromCampaignDomain(campaign)
	if err != nil {
		return errors.Wrap(err, "failed to encode campaign payload")
	}

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("invalid store or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required campaign information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// FindByID retrieves a single campaign by its unique ID.
func (repo *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by id")
	}

	return toCampaignDomain(&campaignM)
}

// List retrieves campaigns matching the given filter, newest first.
func (repo *campaignRepository) List(ctx context.Context, filter repository.CampaignListFilter) ([]*entity.Campaign, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CampaignModel{})

	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count campaigns")
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var campaignModels []*model.CampaignModel
	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaign, err := toCampaignDomain(campaignM)
		if err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, total, nil
}

// Update modifies an existing campaign entity in the database.
func (repo *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	payload, err := encodeTypeSpecificData(campaign.TypeSpecificData)
	if err != nil {
		return errors.Wrap(err, "failed to encode campaign payload")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", campaign.ID).
		Updates(map[string]any{
			"title":              campaign.Title,
			"description":        campaign.Description,
			"budget":             campaign.Budget,
			"currency":           campaign.Currency,
			"status":             string(campaign.Status),
			"type":               string(campaign.Type),
			"product_id":         campaign.ProductID,
			"type_specific_data": payload,
			"published_at":       campaign.PublishedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update campaign")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// Delete removes a campaign and its applications.
func (repo *campaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ?", id).
		Delete(&model.CampaignApplicationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete campaign applications")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CampaignModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete campaign")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// CreateApplication persists a new campaign application.
// The composite unique index maps duplicate submits to ErrDuplicateApplication.
func (repo *campaignRepository) CreateApplication(ctx context.Context, application *entity.CampaignApplication) error {
	applicationM := fromApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Create(applicationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateApplication
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCampaignNotFound.WrapMessage("invalid campaign or influencer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign application")
	}

	application.ID = applicationM.ID

	return nil
}

// FindApplicationByID retrieves a single application by its unique ID.
func (repo *campaignRepository) FindApplicationByID(ctx context.Context, id uuid.UUID) (*entity.CampaignApplication, error) {
	var applicationM model.CampaignApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&applicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application by id")
	}

	return toApplicationDomain(&applicationM), nil
}

// FindApplicationsByCampaign retrieves all applications for a campaign, oldest first.
func (repo *campaignRepository) FindApplicationsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.CampaignApplication, error) {
	var applicationModels []*model.CampaignApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("applied_at ASC").
		Find(&applicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find applications by campaign")
	}

	applications := make([]*entity.CampaignApplication, 0, len(applicationModels))
	for _, applicationM := range applicationModels {
		applications = append(applications, toApplicationDomain(applicationM))
	}

	return applications, nil
}

// FindApplicationsByInfluencer retrieves all applications submitted by an influencer.
func (repo *campaignRepository) FindApplicationsByInfluencer(ctx context.Context, influencerID uuid.UUID) ([]*entity.CampaignApplication, error) {
	var applicationModels []*model.CampaignApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("influencer_id = ?", influencerID).
		Order("applied_at DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find applications by influencer")
	}

	applications := make([]*entity.CampaignApplication, 0, len(applicationModels))
	for _, applicationM := range applicationModels {
		applications = append(applications, toApplicationDomain(applicationM))
	}

	return applications, nil
}

// UpdateApplication modifies an existing campaign application.
func (repo *campaignRepository) UpdateApplication(ctx context.Context, application *entity.CampaignApplication) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignApplicationModel{}).
		Where("id = ?", application.ID).
		Updates(map[string]any{
			"status":      string(application.Status),
			"selected_at": application.SelectedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update campaign application")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

func encodeTypeSpecificData(data map[string]any) (datatypes.JSON, error) {
	if len(data) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return datatypes.JSON(raw), nil
}

// toCampaignDomain maps a persistence model back to a pure domain entity.
func toCampaignDomain(m *model.CampaignModel) (*entity.Campaign, error) {
	var data map[string]any
	if len(m.TypeSpecificData) > 0 {
		if err := json.Unmarshal(m.TypeSpecificData, &data); err != nil {
			return nil, errors.Wrap(err, "failed to decode campaign payload")
		}
	}

	return &entity.Campaign{
		ID:               m.ID,
		StoreID:          m.StoreID,
		Title:            m.Title,
		Description:      m.Description,
		Budget:           m.Budget,
		Currency:         m.Currency,
		Status:           entity.CampaignStatus(m.Status),
		Type:             entity.CampaignType(m.Type),
		ProductID:        m.ProductID,
		TypeSpecificData: data,
		PublishedAt:      m.PublishedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

// fromCampaignDomain maps a pure domain entity to a GORM persistence model.
func fromCampaignDomain(campaign *entity.Campaign) (*model.CampaignModel, error) {
	payload, err := encodeTypeSpecificData(campaign.TypeSpecificData)
	if err != nil {
		return nil, err
	}

	return &model.CampaignModel{
		ID:               campaign.ID,
		StoreID:          campaign.StoreID,
		Title:            campaign.Title,
		Description:      campaign.Description,
		Budget:           campaign.Budget,
		Currency:         campaign.Currency,
		Status:           string(campaign.Status),
		Type:             string(campaign.Type),
		ProductID:        campaign.ProductID,
		TypeSpecificData: payload,
		PublishedAt:      campaign.PublishedAt,
		CreatedAt:        campaign.CreatedAt,
		UpdatedAt:        campaign.UpdatedAt,
	}, nil
}

// toApplicationDomain maps a persistence model back to a pure domain entity.
func toApplicationDomain(m *model.CampaignApplicationModel) *entity.CampaignApplication {
	return &entity.CampaignApplication{
		ID:           m.ID,
		CampaignID:   m.CampaignID,
		InfluencerID: m.InfluencerID,
		Status:       entity.ApplicationStatus(m.Status),
		Message:      m.Message,
		AppliedAt:    m.AppliedAt,
		SelectedAt:   m.SelectedAt,
	}
}

// fromApplicationDomain maps a pure domain entity to a GORM persistence model.
func fromApplicationDomain(application *entity.CampaignApplication) *model.CampaignApplicationModel {
	return &model.CampaignApplicationModel{
		ID:           application.ID,
		CampaignID:   application.CampaignID,
		InfluencerID: application.InfluencerID,
		Status:       string(application.Status),
		Message:      application.Message,
		AppliedAt:    application.AppliedAt,
		SelectedAt:   application.SelectedAt,
	}
}
