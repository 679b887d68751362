// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// influencerRepository implements the repository.InfluencerRepository interface using GORM.
type influencerRepository struct {
	db *gorm.DB
}

// NewInfluencerRepository is the constructor for influencerRepository.
func NewInfluencerRepository(db *gorm.DB) repository.InfluencerRepository {
	return &influencerRepository{
		db: db,
	}
}

// Create persists a new influencer profile, including its social accounts.
// The unique index on user_id maps re-registration to ErrInfluencerExists.
func (repo *influencerRepository) Create(ctx context.Context, influencer *entity.Influencer) error {
	influencerM := fromInfluencerDomain(influencer)

	if err := repo.db.WithContext(ctx).Create(influencerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrInfluencerExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create influencer")
	}

	influencer.ID = influencerM.ID
	influencer.CreatedAt = influencerM.CreatedAt
	influencer.UpdatedAt = influencerM.UpdatedAt
	for i := range influencerM.SocialAccounts {
		influencer.SocialAccounts[i].ID = influencerM.SocialAccounts[i].ID
		influencer.SocialAccounts[i].InfluencerID = influencerM.ID
	}

	return nil
}

// FindByID retrieves a single influencer by its unique ID, with social accounts preloaded.
func (repo *influencerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Influencer, error) {
	var influencerM model.InfluencerModel

	if err := repo.db.WithContext(ctx).
		Preload("SocialAccounts").
		Where("id = ?", id).
		First(&influencerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInfluencerNotFound
		}

		return nil, errors.Wrap(err, "failed to find influencer by id")
	}

	return toInfluencerDomain(&influencerM), nil
}

// FindByUserID retrieves the influencer profile belonging to a user.
func (repo *influencerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Influencer, error) {
	var influencerM model.InfluencerModel

	if err := repo.db.WithContext(ctx).
		Preload("SocialAccounts").
		Where("user_id = ?", userID).
		First(&influencerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInfluencerNotFound
		}

		return nil, errors.Wrap(err, "failed to find influencer by user id")
	}

	return toInfluencerDomain(&influencerM), nil
}

// List retrieves influencers matching the given filter, newest first.
func (repo *influencerRepository) List(ctx context.Context, filter repository.InfluencerListFilter) ([]*entity.Influencer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.InfluencerModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count influencers")
	}

	query = query.Preload("SocialAccounts").Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var influencerModels []*model.InfluencerModel
	if err := query.Find(&influencerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list influencers")
	}

	influencers := make([]*entity.Influencer, 0, len(influencerModels))
	for _, influencerM := range influencerModels {
		influencers = append(influencers, toInfluencerDomain(influencerM))
	}

	return influencers, total, nil
}

// Update modifies an existing influencer profile in the database.
func (repo *influencerRepository) Update(ctx context.Context, influencer *entity.Influencer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InfluencerModel{}).
		Where("id = ?", influencer.ID).
		Updates(map[string]any{
			"display_name": influencer.DisplayName,
			"bio":          influencer.Bio,
			"status":       string(influencer.Status),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update influencer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInfluencerNotFound
	}

	return nil
}

// ReplaceSocialAccounts swaps the full social account set of an influencer.
func (repo *influencerRepository) ReplaceSocialAccounts(ctx context.Context, influencerID uuid.UUID, accounts []entity.SocialAccount) error {
	if err := repo.db.WithContext(ctx).
		Where("influencer_id = ?", influencerID).
		Delete(&model.SocialAccountModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear social accounts")
	}

	if len(accounts) == 0 {
		return nil
	}

	accountModels := make([]model.SocialAccountModel, 0, len(accounts))
	for _, account := range accounts {
		accountModels = append(accountModels, model.SocialAccountModel{
			ID:            account.ID,
			InfluencerID:  influencerID,
			Platform:      account.Platform,
			Handle:        account.Handle,
			URL:           account.URL,
			FollowerCount: account.FollowerCount,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&accountModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace social accounts")
	}

	return nil
}

// Delete removes an influencer profile. Social accounts are cleared first so
// the delete does not depend on database-level cascade rules.
func (repo *influencerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("influencer_id = ?", id).
		Delete(&model.SocialAccountModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete social accounts")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InfluencerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete influencer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInfluencerNotFound
	}

	return nil
}

// toInfluencerDomain maps a persistence model back to a pure domain entity.
func toInfluencerDomain(m *model.InfluencerModel) *entity.Influencer {
	accounts := make([]entity.SocialAccount, 0, len(m.SocialAccounts))
	for _, accountM := range m.SocialAccounts {
		accounts = append(accounts, entity.SocialAccount{
			ID:            accountM.ID,
			InfluencerID:  accountM.InfluencerID,
			Platform:      accountM.Platform,
			Handle:        accountM.Handle,
			URL:           accountM.URL,
			FollowerCount: accountM.FollowerCount,
		})
	}

	return &entity.Influencer{
		ID:             m.ID,
		UserID:         m.UserID,
		DisplayName:    m.DisplayName,
		Bio:            m.Bio,
		Status:         entity.InfluencerStatus(m.Status),
		SocialAccounts: accounts,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// fromInfluencerDomain maps a pure domain entity to a GORM persistence model.
func fromInfluencerDomain(influencer *entity.Influencer) *model.InfluencerModel {
	accounts := make([]model.SocialAccountModel, 0, len(influencer.SocialAccounts))
	for _, account := range influencer.SocialAccounts {
		accounts = append(accounts, model.SocialAccountModel{
			ID:            account.ID,
			InfluencerID:  account.InfluencerID,
			Platform:      account.Platform,
			Handle:        account.Handle,
			URL:           account.URL,
			FollowerCount: account.FollowerCount,
		})
	}

	return &model.InfluencerModel{
		ID:             influencer.ID,
		UserID:         influencer.UserID,
		DisplayName:    influencer.DisplayName,
		Bio:            influencer.Bio,
		Status:         string(influencer.Status),
		SocialAccounts: accounts,
		CreatedAt:      influencer.CreatedAt,
		UpdatedAt:      influencer.UpdatedAt,
	}
}
